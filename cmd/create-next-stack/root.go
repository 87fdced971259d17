package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/create-next-stack/internal/config"
	"github.com/conn-castle/create-next-stack/internal/create"
	"github.com/conn-castle/create-next-stack/internal/execx"
	"github.com/conn-castle/create-next-stack/internal/messages"
	"github.com/conn-castle/create-next-stack/internal/online"
	"github.com/conn-castle/create-next-stack/internal/pkgmanager"
	"github.com/conn-castle/create-next-stack/internal/preflight"
	"github.com/conn-castle/create-next-stack/internal/terminal"
	"github.com/conn-castle/create-next-stack/internal/wizard"
)

var isTerminal = terminal.IsInteractive
var runWizard = func(req wizard.Request) (wizard.Answers, error) {
	return wizard.Run(wizard.NewHuhUI(), req)
}
var newRunner = func() execx.Runner { return execx.RealRunner{} }
var hostResolver online.Resolver = net.DefaultResolver
var createRun = create.Run
var checkEmpty = preflight.CheckEmpty

const (
	flagConfig      = "config"
	flagUseNpm      = "use-npm"
	flagUsePnpm     = "use-pnpm"
	flagUseYarn     = "use-yarn"
	flagUseBun      = "use-bun"
	flagSWR         = "swr"
	flagNoSWR       = "no-swr"
	flagComponent   = "component"
	flagTailwind    = "tailwind"
	flagESLint      = "eslint"
	flagSrcDir      = "src-dir"
	flagImportAlias = "import-alias"
	flagNextVersion = "next-version"
	flagYes         = "yes"
	flagSkipInstall = "skip-install"
	flagDisableGit  = "disable-git"
)

type rootFlags struct {
	configPath  string
	useNpm      bool
	usePnpm     bool
	useYarn     bool
	useBun      bool
	swr         bool
	noSWR       bool
	components  []string
	tailwind    bool
	eslint      bool
	srcDir      bool
	importAlias string
	nextVersion string
	yes         bool
	skipInstall bool
	disableGit  bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          heredoc.Doc(messages.RootLong),
		Example:       messages.RootExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) > 0 {
				projectPath = args[0]
			}
			return runCreate(cmd, flags, projectPath)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, flagConfig, "", messages.FlagConfig)
	f.BoolVar(&flags.useNpm, flagUseNpm, false, messages.FlagUseNpm)
	f.BoolVar(&flags.usePnpm, flagUsePnpm, false, messages.FlagUsePnpm)
	f.BoolVar(&flags.useYarn, flagUseYarn, false, messages.FlagUseYarn)
	f.BoolVar(&flags.useBun, flagUseBun, false, messages.FlagUseBun)
	f.BoolVar(&flags.swr, flagSWR, false, messages.FlagSWR)
	f.BoolVar(&flags.noSWR, flagNoSWR, false, messages.FlagNoSWR)
	f.StringArrayVar(&flags.components, flagComponent, nil, messages.FlagComponent)
	f.BoolVar(&flags.tailwind, flagTailwind, defaults.Tailwind, messages.FlagTailwind)
	f.BoolVar(&flags.eslint, flagESLint, defaults.ESLint, messages.FlagESLint)
	f.BoolVar(&flags.srcDir, flagSrcDir, defaults.SrcDir, messages.FlagSrcDir)
	f.StringVar(&flags.importAlias, flagImportAlias, defaults.ImportAlias, messages.FlagImportAlias)
	f.StringVar(&flags.nextVersion, flagNextVersion, "", messages.FlagNextVersion)
	f.BoolVarP(&flags.yes, flagYes, "y", false, messages.FlagYes)
	f.BoolVar(&flags.skipInstall, flagSkipInstall, false, messages.FlagSkipInstall)
	f.BoolVar(&flags.disableGit, flagDisableGit, false, messages.FlagDisableGit)

	return cmd
}

// runCreate assembles create.Options from the preferences file, flags and prompts, then runs it.
func runCreate(cmd *cobra.Command, flags rootFlags, projectPath string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	prefs, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	manager, err := resolveManager(flags, prefs)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, flags, &prefs); err != nil {
		return err
	}

	if !flags.yes && isTerminal() {
		req := wizard.Request{
			ProjectPath:   projectPath,
			ComponentsSet: cmd.Flags().Changed(flagComponent) || len(prefs.Components) > 0,
			Components:    prefs.Components,
		}
		if cmd.Flags().Changed(flagSWR) || cmd.Flags().Changed(flagNoSWR) {
			swr := prefs.SWR
			req.SWR = &swr
		}
		answers, err := runWizard(req)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(errOut, messages.ExitingPrompt)
				return &SilentExitError{Code: 1}
			}
			return err
		}
		projectPath = answers.ProjectPath
		prefs.SWR = answers.SWR
		prefs.Components = answers.Components
	}
	if err := prefs.Validate(); err != nil {
		return err
	}

	projectPath = strings.TrimSpace(projectPath)
	if projectPath == "" {
		printMissingProjectDir(errOut)
		return &SilentExitError{Code: 1}
	}

	root, err := filepath.Abs(projectPath)
	if err != nil {
		return fmt.Errorf(messages.CreateResolveRootFmt, projectPath, err)
	}
	check, err := checkEmpty(root)
	if err != nil {
		return err
	}
	if !check.Empty() {
		preflight.ReportConflicts(out, filepath.Base(root), check)
		return &SilentExitError{Code: 1}
	}

	runner := newRunner()
	isOnline := create.IsOnline(ctx, manager, hostResolver)
	version, err := versionResolver(prefs, manager, runner, out).Resolve(ctx, !isOnline)
	if err != nil {
		return err
	}
	green := color.New(color.FgGreen).SprintFunc()
	_, _ = fmt.Fprintln(out, green(fmt.Sprintf(messages.CreateCreatingProjectFmt, projectPath, version)))

	err = createRun(ctx, create.Options{
		AppPath:     root,
		Preferences: prefs.Clone(),
		Version:     version,
		Manager:     manager,
		System:      create.RealSystem{},
		Runner:      runner,
		Resolver:    hostResolver,
		Out:         out,
		Err:         errOut,
		SkipInstall: flags.skipInstall,
		DisableGit:  flags.disableGit || prefs.DisableGit,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, create.ErrNotWriteable), errors.Is(err, create.ErrNotEmpty):
		return &SilentExitError{Code: 1}
	default:
		return &abortError{err: err}
	}
}

// resolveManager picks the package manager: an explicit flag, then the preferences file,
// then the user agent of the invoking package manager.
func resolveManager(flags rootFlags, prefs config.Preferences) (pkgmanager.Name, error) {
	var chosen []pkgmanager.Name
	for _, candidate := range []struct {
		set  bool
		name pkgmanager.Name
	}{
		{flags.useNpm, pkgmanager.NPM},
		{flags.usePnpm, pkgmanager.PNPM},
		{flags.useYarn, pkgmanager.Yarn},
		{flags.useBun, pkgmanager.Bun},
	} {
		if candidate.set {
			chosen = append(chosen, candidate.name)
		}
	}
	switch {
	case len(chosen) > 1:
		return "", errors.New(messages.FlagPackageManagers)
	case len(chosen) == 1:
		return chosen[0], nil
	}
	if strings.TrimSpace(prefs.PackageManager) != "" {
		return pkgmanager.Parse(prefs.PackageManager)
	}
	return pkgmanager.DetectFromEnv(), nil
}

// applyFlags overlays the flags the user actually set on prefs.
func applyFlags(cmd *cobra.Command, flags rootFlags, prefs *config.Preferences) error {
	changed := cmd.Flags().Changed
	if changed(flagSWR) && changed(flagNoSWR) {
		return errors.New(messages.FlagSWRConflict)
	}
	if changed(flagSWR) {
		prefs.SWR = flags.swr
	}
	if changed(flagNoSWR) {
		prefs.SWR = !flags.noSWR
	}
	if changed(flagComponent) {
		prefs.Components = append([]string(nil), flags.components...)
	}
	if changed(flagTailwind) {
		prefs.Tailwind = flags.tailwind
	}
	if changed(flagESLint) {
		prefs.ESLint = flags.eslint
	}
	if changed(flagSrcDir) {
		prefs.SrcDir = flags.srcDir
	}
	if changed(flagImportAlias) {
		prefs.ImportAlias = flags.importAlias
	}
	if changed(flagNextVersion) {
		prefs.NextVersion = flags.nextVersion
	}
	return prefs.Validate()
}

// versionResolver pins the version when one was configured and asks the registry otherwise.
func versionResolver(prefs config.Preferences, manager pkgmanager.Name, runner execx.Runner, out io.Writer) pkgmanager.VersionResolver {
	if strings.TrimSpace(prefs.NextVersion) != "" {
		return pkgmanager.StaticResolver{Version: prefs.NextVersion}
	}
	return pkgmanager.RegistryResolver{Manager: manager, Runner: runner, Warn: out}
}

func printMissingProjectDir(w io.Writer) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	_, _ = fmt.Fprintf(w, messages.MissingProjectDirFmt,
		cyan(messages.RootName), green(messages.ProjectDirPlaceholder),
		cyan(messages.RootName), green(messages.ProjectDirExample),
		cyan(fmt.Sprintf(messages.HelpHintFmt, messages.RootName)),
	)
}
