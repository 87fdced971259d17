// Package execx runs external commands behind a stub-friendly interface.
package execx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Result holds the captured outcome of a command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir    string            // working directory (optional)
	Env    map[string]string // extra environment variables (overlay)
	Stdin  io.Reader         // Stream only; defaults to os.Stdin
	Stdout io.Writer         // Stream only; defaults to os.Stdout
	Stderr io.Writer         // Stream only; defaults to os.Stderr
}

// Runner runs external commands.
type Runner interface {
	// Run executes a command and captures its output.
	// A process that exits non-zero is not an error: the code is reported in Result.
	// Errors are reserved for failures to run at all (binary not found, ctx canceled).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error)
	// Stream executes a command with stdio passed through and returns its exit code.
	Stream(ctx context.Context, name string, args []string, opts RunOpts) (int, error)
}

// RealRunner implements Runner with os/exec.
type RealRunner struct{}

// Run executes the command and captures stdout and stderr.
func (RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (Result, error) {
	cmd := command(ctx, name, args, opts)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	code, err := exitCode(err)
	result.ExitCode = code
	return result, err
}

// Stream executes the command attached to the given (or process) stdio.
func (RealRunner) Stream(ctx context.Context, name string, args []string, opts RunOpts) (int, error) {
	cmd := command(ctx, name, args, opts)
	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return exitCode(cmd.Run())
}

func command(ctx context.Context, name string, args []string, opts RunOpts) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	return cmd
}

// exitCode separates "ran and exited non-zero" from "could not run".
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
