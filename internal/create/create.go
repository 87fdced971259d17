// Package create sequences the steps that turn an empty directory into a Next.js project.
package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/execx"
	"github.com/conn-castle/create-next-stack/internal/gitinit"
	"github.com/conn-castle/create-next-stack/internal/manifest"
	"github.com/conn-castle/create-next-stack/internal/materialize"
	"github.com/conn-castle/create-next-stack/internal/messages"
	"github.com/conn-castle/create-next-stack/internal/online"
	"github.com/conn-castle/create-next-stack/internal/pkgmanager"
	"github.com/conn-castle/create-next-stack/internal/preflight"
)

var (
	// ErrNotWriteable is returned when the parent of the project directory cannot be written.
	ErrNotWriteable = errors.New(messages.CreateNotWriteableErr)
	// ErrNotEmpty is returned when the project directory holds conflicting entries.
	ErrNotEmpty = errors.New("project directory is not empty")
)

var (
	isWriteable = preflight.IsWriteable
	checkEmpty  = preflight.CheckEmpty
	getwd       = os.Getwd
	lookupEnv   = os.LookupEnv
)

// Options is the complete input of one run. It is assembled before anything is written.
type Options struct {
	// AppPath is the project directory as given by the user.
	AppPath     string
	Preferences config.Preferences
	// Version is the resolved Next.js version.
	Version string
	Manager pkgmanager.Name
	System  System
	Runner  execx.Runner
	// Resolver answers the registry reachability probe; nil uses net.DefaultResolver.
	Resolver online.Resolver
	Out      io.Writer
	Err      io.Writer
	// Source overrides the embedded template tree.
	Source      fs.FS
	SkipInstall bool
	DisableGit  bool
}

// IsOnline reports whether installs may reach the registry. Only yarn probes;
// every other manager is assumed online.
func IsOnline(ctx context.Context, manager pkgmanager.Name, r online.Resolver) bool {
	if manager != pkgmanager.Yarn {
		return true
	}
	if r == nil {
		r = net.DefaultResolver
	}
	return online.Probe(ctx, r)
}

// Run creates the project described by opts. Steps run strictly in order and the first
// fatal failure is returned. Files written before a failure are left in place.
func Run(ctx context.Context, opts Options) error {
	if opts.AppPath == "" {
		return errors.New(messages.CreateAppPathRequired)
	}
	if opts.System == nil {
		return errors.New(messages.CreateSystemRequired)
	}
	if opts.Runner == nil {
		return errors.New(messages.CreateRunnerRequired)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	root, err := filepath.Abs(opts.AppPath)
	if err != nil {
		return fmt.Errorf(messages.CreateResolveRootFmt, opts.AppPath, err)
	}
	appName := filepath.Base(root)

	if !isWriteable(filepath.Dir(root)) {
		_, _ = fmt.Fprintln(errOut, messages.CreateNotWriteable)
		_, _ = fmt.Fprintln(errOut, messages.CreateNotWriteableHint)
		return ErrNotWriteable
	}
	if err := opts.System.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf(messages.CreateMakeDirFailedFmt, root, err)
	}
	check, err := checkEmpty(root)
	if err != nil {
		return err
	}
	if !check.Empty() {
		preflight.ReportConflicts(out, appName, check)
		return ErrNotEmpty
	}

	isOnline := IsOnline(ctx, opts.Manager, opts.Resolver)
	originalDir, err := getwd()
	if err != nil {
		originalDir = ""
	}

	green := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	_, _ = fmt.Fprintf(out, messages.CreateCreatingAppFmt, green(root))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, messages.MaterializeUsingFmt, bold(string(opts.Manager)))

	if _, err := materialize.Run(materialize.Request{
		Root:        root,
		Preferences: opts.Preferences,
		System:      opts.System,
		Out:         out,
		Source:      opts.Source,
	}); err != nil {
		return err
	}

	m := manifest.Build(appName, opts.Version, opts.Preferences, lookupEnv)
	if err := manifest.Write(opts.System, root, m); err != nil {
		return err
	}

	if opts.SkipInstall {
		_, _ = fmt.Fprintln(out, messages.CreateSkipInstall)
	} else {
		manifest.Summary(out, m)
		_, _ = fmt.Fprintln(out)
		installer := pkgmanager.Installer{
			Manager: opts.Manager,
			Runner:  opts.Runner,
			Out:     out,
			Stdout:  out,
			Stderr:  errOut,
		}
		if err := installer.Install(ctx, root, isOnline); err != nil {
			return err
		}
		if err := installer.AddComponents(ctx, root, opts.Preferences.Components); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(out)

	if !opts.DisableGit && gitinit.TryInit(ctx, opts.Runner, root) {
		_, _ = fmt.Fprintln(out, messages.CreateGitInitialized)
		_, _ = fmt.Fprintln(out)
	}

	printSuccess(out, opts, appName, cdPath(originalDir, appName, opts.AppPath))
	return nil
}

// cdPath is the bare app name when the project sits directly in the starting working directory.
func cdPath(originalDir string, appName string, appPath string) string {
	if originalDir != "" {
		if abs, err := filepath.Abs(appPath); err == nil && filepath.Join(originalDir, appName) == abs {
			return appName
		}
	}
	return appPath
}

func printSuccess(out io.Writer, opts Options, appName string, cd string) {
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	pm := opts.Manager

	_, _ = fmt.Fprintf(out, messages.CreateSuccessFmt, green(messages.CreateSuccessWord), appName, opts.AppPath)
	_, _ = fmt.Fprintln(out, messages.CreateInsideDir)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cyan("  "+pm.RunScript("dev")))
	_, _ = fmt.Fprintln(out, messages.CreateDevHint)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cyan("  "+pm.RunScript("build")))
	_, _ = fmt.Fprintln(out, messages.CreateBuildHint)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cyan("  "+string(pm)+" start"))
	_, _ = fmt.Fprintln(out, messages.CreateStartHint)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, messages.CreateSuggestBegin)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, cyan("  cd"), cd)
	_, _ = fmt.Fprintf(out, "  %s\n", cyan(pm.RunScript("dev")))
	_, _ = fmt.Fprintln(out)
}
