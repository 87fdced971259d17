package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallOnline(t *testing.T) {
	runner := &fakeRunner{}
	var out bytes.Buffer
	inst := Installer{Manager: NPM, Runner: runner, Out: &out}

	require.NoError(t, inst.Install(context.Background(), "/tmp/app", true))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "npm install", runner.calls[0].String())
	assert.Equal(t, "/tmp/app", runner.calls[0].opts.Dir)
	assert.Equal(t, "development", runner.calls[0].opts.Env["NODE_ENV"])
	assert.Equal(t, "1", runner.calls[0].opts.Env["ADBLOCK"])
	assert.Equal(t, "1", runner.calls[0].opts.Env["DISABLE_OPENCOLLECTIVE"])
	assert.Empty(t, out.String())
}

func TestInstallOffline(t *testing.T) {
	runner := &fakeRunner{}
	var out bytes.Buffer
	inst := Installer{Manager: Yarn, Runner: runner, Out: &out}

	require.NoError(t, inst.Install(context.Background(), "/tmp/app", false))
	assert.Equal(t, "yarn install --offline", runner.calls[0].String())
	assert.Contains(t, out.String(), "Falling back to the local Yarn cache.")
}

func TestInstallNonZeroExit(t *testing.T) {
	runner := &fakeRunner{code: 1}
	err := Installer{Manager: PNPM, Runner: runner}.Install(context.Background(), "/tmp/app", true)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "pnpm install", cmdErr.Command)
	assert.Equal(t, 1, cmdErr.ExitCode)
}

func TestInstallStartFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("executable file not found")}
	err := Installer{Manager: Bun, Runner: runner}.Install(context.Background(), "/tmp/app", true)
	require.Error(t, err)
	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr))
	assert.Contains(t, err.Error(), "bun install")
}

func TestAddComponents(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	runner := &fakeRunner{}
	var out bytes.Buffer
	inst := Installer{Manager: PNPM, Runner: runner, Out: &out}

	require.NoError(t, inst.AddComponents(context.Background(), "/tmp/app", []string{"button", "card"}))
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "pnpm dlx shadcn-ui@latest add --yes button card", runner.calls[0].String())
	assert.Contains(t, out.String(), "Adding shadcn component:\n- button\n- card\n")
}

func TestAddComponentsEmpty(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, Installer{Manager: NPM, Runner: runner}.AddComponents(context.Background(), "/tmp/app", nil))
	assert.Empty(t, runner.calls)
}

func TestAddComponentsFailure(t *testing.T) {
	runner := &fakeRunner{code: 2}
	err := Installer{Manager: NPM, Runner: runner, Out: &bytes.Buffer{}}.AddComponents(context.Background(), "/tmp/app", []string{"button"})
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "npx shadcn-ui@latest add --yes button", cmdErr.Command)
}
