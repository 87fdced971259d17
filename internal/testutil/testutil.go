// Package testutil writes stand-in executables for tests that drive real subprocesses.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return writeScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubWithOutput writes a stub that prints stdout and exits successfully.
// Stand-in for `<pm> view next version`.
func WriteStubWithOutput(t *testing.T, dir string, name string, stdout string) string {
	t.Helper()
	quoted := strings.ReplaceAll(stdout, "'", `'\''`)
	return writeScript(t, dir, name, fmt.Sprintf("printf '%%s' '%s'\n", quoted))
}

// WriteStubRecordingArgs writes a stub that appends its arguments as one line to logPath
// and exits with exitCode.
func WriteStubRecordingArgs(t *testing.T, dir string, name string, logPath string, exitCode int) string {
	t.Helper()
	body := fmt.Sprintf("echo \"%s $*\" >> '%s'\nexit %d\n", name, logPath, exitCode)
	return writeScript(t, dir, name, body)
}

// UsePath makes dir the only entry of PATH for the rest of the test.
func UsePath(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("PATH", dir)
}

func writeScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
