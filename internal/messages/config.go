package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt         = "read config %s: %w"
	ConfigInvalidConfigFmt    = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt = "%s: unrecognized keys: %v"
	ConfigValidationGuidance  = "(see preflight.toml in the launcher directory)"
	ConfigExpandPathFmt       = "%s: expand %s: %w"

	ConfigDownloadDirRequiredFmt = "%s: download.dir must not be empty"
	ConfigDownloadMaxBytesFmt    = "%s: download.max_bytes must be greater than zero"
	ConfigDownloadProductFmt     = "%s: download.product must not be empty"
	ConfigLogLevelInvalidFmt     = "%s: log.level %q must be one of debug, info, warn, error"
)
