package messages

// Preflight, materialize and manifest messages.
const (
	PreflightConflictHeaderFmt = "The directory %s contains files that could conflict:\n"
	PreflightConflictLineFmt   = "  %s\n"
	PreflightConflictFooter    = "Either try using a new directory name, or remove the files listed above."
	PreflightReadDirFailedFmt  = "failed to read directory %s: %w"
	PreflightStatFailedFmt     = "failed to stat %s: %w"

	MaterializeUsingFmt           = "Using %s.\n"
	MaterializeTemplateFmt        = "\nInitializing project with template: %s \n\n"
	MaterializeUnknownTemplateFmt = "unknown template %q for mode %q (available: %s)"
	MaterializeInvalidPatternFmt  = "invalid copy pattern %q: %w"
	MaterializeWalkFailedFmt      = "failed to walk template %s: %w"
	MaterializeReadFailedFmt      = "failed to read template file %s: %w"
	MaterializeCreateDirFailedFmt = "failed to create directory for %s: %w"
	MaterializeWriteFailedFmt     = "failed to write %s: %w"
	MaterializeReadConfigFmt      = "failed to read %s: %w"

	ManifestEncodeFailedFmt = "failed to encode package.json: %w"
	ManifestWriteFailedFmt  = "failed to write %s: %w"
	ManifestDepsHeader      = "\nInstalling dependencies:"
	ManifestDevDepsHeader   = "\nInstalling devDependencies:"
	ManifestDepLineFmt      = "- %s\n"
)
