//go:build !windows

package execx

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExitCode(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		expectCode int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RealRunner{}.Run(context.Background(), "sh", tt.args, RunOpts{})
			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, result.ExitCode)
		})
	}
}

func TestRunCapturesOutput(t *testing.T) {
	result, err := RealRunner{}.Run(context.Background(), "sh", []string{"-c", "echo stdout; echo stderr >&2"}, RunOpts{})
	require.NoError(t, err)
	assert.Equal(t, "stdout\n", result.Stdout)
	assert.Equal(t, "stderr\n", result.Stderr)
}

func TestRunEnvAndDir(t *testing.T) {
	dir := t.TempDir()
	result, err := RealRunner{}.Run(context.Background(), "sh", []string{"-c", "echo $FOO; pwd"}, RunOpts{
		Dir: dir,
		Env: map[string]string{"FOO": "bar"},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "bar", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], dir) || strings.HasSuffix(dir, lines[1]))
}

func TestRunMissingBinary(t *testing.T) {
	_, err := RealRunner{}.Run(context.Background(), "definitely-not-a-real-binary-xyz", nil, RunOpts{})
	require.Error(t, err)
}

func TestStreamPassesThrough(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code, err := RealRunner{}.Stream(context.Background(), "sh", []string{"-c", "cat; echo oops >&2; exit 3"}, RunOpts{
		Stdin:  strings.NewReader("hello\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}
