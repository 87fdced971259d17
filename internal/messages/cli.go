package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command usage line.
	RootUse = "create-next-stack [project-directory]"
	// RootName is the program name shown in usage hints.
	RootName  = "create-next-stack"
	RootShort = "Create a Next.js app with Tailwind, ESLint, SWR and shadcn-ui components"
	RootLong  = `Create a new Next.js project in <project-directory>.

The project is created from the built-in TypeScript + Tailwind app template,
a package.json is generated for the selected features, dependencies are
installed with the detected package manager, and a git repository is
initialized when possible.`
	RootExample = `  create-next-stack my-next-app
  create-next-stack my-next-app --no-swr --component button --component card
  create-next-stack ./apps/web --use-pnpm --src-dir --import-alias "~/*"`

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig          = "Path to a TOML preferences file (default: $XDG_CONFIG_HOME/create-next-stack/config.toml)"
	FlagUseNpm          = "Explicitly tell the CLI to bootstrap the application using npm"
	FlagUsePnpm         = "Explicitly tell the CLI to bootstrap the application using pnpm"
	FlagUseYarn         = "Explicitly tell the CLI to bootstrap the application using Yarn"
	FlagUseBun          = "Explicitly tell the CLI to bootstrap the application using Bun"
	FlagSWR             = "Add swr as a data-fetching dependency"
	FlagNoSWR           = "Do not add swr"
	FlagComponent       = "shadcn-ui component to add after install (repeatable)"
	FlagTailwind        = "Initialize with Tailwind CSS config"
	FlagESLint          = "Initialize with ESLint config"
	FlagSrcDir          = "Initialize inside a `src/` directory"
	FlagImportAlias     = "Specify import alias to use"
	FlagNextVersion     = "Pin the Next.js version instead of querying the registry (version or range)"
	FlagYes             = "Accept defaults for every question that was not answered by a flag"
	FlagSkipInstall     = "Skip installing dependencies and components"
	FlagDisableGit      = "Skip initializing a git repository"
	FlagPackageManagers = "only one of --use-npm, --use-pnpm, --use-yarn and --use-bun may be set"
	FlagSWRConflict     = "--swr and --no-swr cannot be used together"

	// MissingProjectDirFmt is printed when no project directory was given or entered.
	// Arguments: program name, placeholder, program name, example, help hint.
	MissingProjectDirFmt  = "\nPlease specify the project directory:\n  %s %s\nFor example:\n  %s %s\n\nRun %s to see all options.\n"
	ProjectDirPlaceholder = "<project-directory>"
	ProjectDirExample     = "my-next-app"
	HelpHintFmt           = "%s --help"

	// AbortingInstallation heads fatal error reports.
	AbortingInstallation = "Aborting installation."
	CommandFailedFmt     = "  %s has failed.\n"
	UnexpectedError      = "Unexpected error. Please report it as a bug:"

	ExitingPrompt = "Exiting."
)
