package messages

// Preferences file messages.
const (
	ConfigReadFailedFmt        = "failed to read preferences file %s: %w"
	ConfigParseFailedFmt       = "invalid preferences file %s: %w"
	ConfigResolvePathFailedFmt = "failed to resolve preferences path %s: %w"
	ConfigInvalidAliasFmt      = "import alias %q must follow the pattern <prefix>/*"
	ConfigUnknownComponentFmt  = "unknown shadcn-ui component %q"
	ConfigUnknownModeFmt       = "unsupported language mode %q (only %q is available)"
)
