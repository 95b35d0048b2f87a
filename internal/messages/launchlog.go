package messages

// Log file setup errors.
const (
	LaunchlogParseLevelFmt = "parse log level %q: %w"
	LaunchlogCreateDirFmt  = "create log directory for %s: %w"
	LaunchlogOpenFileFmt   = "open log file %s: %w"
)
