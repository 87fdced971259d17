package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/messages"
	"github.com/conn-castle/create-next-stack/internal/pkgmanager"
)

var executeFunc = execute
var notifySignals = signal.Notify

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output.
type SilentExitError struct {
	Code int
}

func (e SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// abortError marks a failure that happened after project creation started.
// runMain reports it the way an aborted installation is reported.
type abortError struct {
	err error
}

func (e *abortError) Error() string { return e.err.Error() }

func (e *abortError) Unwrap() error { return e.err }

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(context.Background())
}

// runMain executes the CLI and exits on fatal errors.
// SIGINT and SIGTERM end the process with status 0 without cleanup.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	stop := watchSignals(exit)
	defer stop()

	if err := executeFunc(args, stdout, stderr); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			exit(silent.Code)
			return
		}
		var aborted *abortError
		if errors.As(err, &aborted) {
			reportAbort(stdout, aborted.err)
			exit(1)
			return
		}
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

func watchSignals(exit func(int)) func() {
	signals := make(chan os.Signal, 1)
	notifySignals(signals, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-signals:
			exit(0)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
	}
}

// reportAbort names the failed command when there is one and prints the raw error otherwise.
func reportAbort(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, messages.AbortingInstallation)
	var cmdErr *pkgmanager.CommandError
	if errors.As(err, &cmdErr) {
		cyan := color.New(color.FgCyan).SprintFunc()
		_, _ = fmt.Fprintf(w, messages.CommandFailedFmt, cyan(cmdErr.Command))
	} else {
		red := color.New(color.FgRed).SprintFunc()
		_, _ = fmt.Fprintln(w, red(messages.UnexpectedError))
		_, _ = fmt.Fprintln(w, err)
	}
	_, _ = fmt.Fprintln(w)
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
