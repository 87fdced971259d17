package messages

// Package manager, git and network messages.
const (
	PkgOfflineWarning        = "You appear to be offline.\nFalling back to the local cache."
	PkgInstallOfflineWarning = "You appear to be offline.\nFalling back to the local Yarn cache."
	PkgInvalidVersionFmt     = "invalid Next.js version %q: %w"
	PkgEmptyVersion          = "Next.js version is empty"
	PkgCommandFailedFmt      = "%s exited with code %d"
	PkgCommandStartFailedFmt = "%s: %w"
	PkgComponentsHeader      = "\nAdding shadcn component:"
	PkgComponentLineFmt      = "- %s\n"
	PkgUnknownManagerFmt     = "unknown package manager %q (supported: npm, pnpm, yarn, bun)"
)
