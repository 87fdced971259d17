package messages

// Orchestrator messages.
const (
	CreateAppPathRequired = "app path is required"
	CreateSystemRequired  = "create system is required"
	CreateRunnerRequired  = "create command runner is required"

	CreateNotWriteable       = "The application path is not writable, please check folder permissions and try again."
	CreateNotWriteableHint   = "It is likely you do not have write permissions for this folder."
	CreateNotWriteableErr    = "application path is not writable"
	CreateNotEmptyErrFmt     = "directory %s contains files that could conflict"
	CreateMakeDirFailedFmt   = "failed to create directory %s: %w"
	CreateResolveRootFmt     = "failed to resolve project path %s: %w"
	CreateCreatingProjectFmt = "Creating project %s using next.js version %s"
	CreateCreatingAppFmt     = "Creating a new Next.js app in %s.\n"

	CreateGitInitialized = "Initialized a git repository."
	CreateSuccessFmt     = "%s Created %s at %s\n"
	CreateSuccessWord    = "Success!"
	CreateInsideDir      = "Inside that directory, you can run several commands:"
	CreateDevHint        = "    Starts the development server."
	CreateBuildHint      = "    Builds the app for production."
	CreateStartHint      = "    Runs the built app in production mode."
	CreateSuggestBegin   = "We suggest that you begin by typing:"
	CreateSkipInstall    = "Skipping dependency installation (--skip-install)."
)
