//go:build !windows

package pkgmanager

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/create-next-stack/internal/execx"
	"github.com/conn-castle/create-next-stack/internal/testutil"
)

func TestRegistryResolverWithStubManager(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithOutput(t, dir, "npm", "\n14.0.3\n")
	testutil.UsePath(t, dir)

	version, err := RegistryResolver{Manager: NPM, Runner: execx.RealRunner{}}.Resolve(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "14.0.3", version)
}

func TestRegistryResolverMissingManager(t *testing.T) {
	testutil.UsePath(t, t.TempDir())

	version, err := RegistryResolver{Manager: Bun, Runner: execx.RealRunner{}}.Resolve(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, FallbackVersion, version)
}

func TestInstallerWithStubManager(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	testutil.WriteStubRecordingArgs(t, dir, "pnpm", logPath, 0)
	testutil.UsePath(t, dir)

	var out bytes.Buffer
	installer := Installer{Manager: PNPM, Runner: execx.RealRunner{}, Out: &out, Stdout: &out, Stderr: &out}
	require.NoError(t, installer.Install(context.Background(), dir, true))
	require.NoError(t, installer.AddComponents(context.Background(), dir, []string{"button", "card"}))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "pnpm install\npnpm dlx shadcn-ui@latest add --yes button card\n", string(data))
}

func TestInstallerStubFailure(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "yarn", 2)
	testutil.UsePath(t, dir)

	var out bytes.Buffer
	installer := Installer{Manager: Yarn, Runner: execx.RealRunner{}, Out: &out, Stdout: &out, Stderr: &out}
	err := installer.Install(context.Background(), dir, false)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "yarn install --offline", cmdErr.Command)
	assert.Equal(t, 2, cmdErr.ExitCode)
}
