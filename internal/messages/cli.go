package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "preflight"
	// RootShort is the short description for the root command.
	RootShort          = "Launcher preflight: runtime dependency checks and service endpoints"
	RootFlagConfig     = "Path to preflight.toml (defaults to ./preflight.toml when present)"
	RootFlagLogFile    = "Write structured log records to this file (empty disables logging)"
	RootFlagLogLevel   = "Log level (debug, info, warn, error)"
	RootLogOpenFailFmt = "open log %s: %w"
	RootHostDetectLog  = "host architecture detection failed; assuming 32-bit"
	RootHost32Bit      = "32-bit"
	RootHost64Bit      = "64-bit"
	RootHostLabelFmt   = "%s %s"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// CheckUse is the check command name.
	CheckUse      = "check"
	CheckShort    = "Verify runtime dependencies and install missing ones"
	CheckFlagYes  = "Install missing dependencies without asking"
	CheckHeader   = "Checking runtime dependencies...\n"
	CheckProgress = "  %s: %s\n"

	CheckSummaryOK     = "All runtime dependencies are ready."
	CheckSummaryFail   = "One or more runtime dependencies are not ready. The game will not be started."
	CheckSummaryHeader = "Summary:"

	// StatusUse is the status command name.
	StatusUse   = "status"
	StatusShort = "Report runtime dependency status without installing anything"

	StatusLineFmt               = "%s %s: %s\n"
	StatusSatisfiedFmt          = "installed (%s)"
	StatusNotApplicableFmt      = "not required on %s"
	StatusMissing               = "not installed"
	StatusMissingCauseFmt       = "not installed (%v)"
	StatusVersionRejectedFmt    = "installed version %q is not supported"
	StatusSummaryMissing        = "Missing runtime dependencies; run `preflight check` to install them."
	StatusSummaryOK             = "All runtime dependencies are installed."
	StatusLabelOK               = "[OK]     "
	StatusLabelMissing          = "[MISSING]"
	StatusLabelNotApplicable    = "[N/A]    "
	StatusLabelFail             = "[FAIL]   "
	StatusRecommendationPrefix  = "         > "
	StatusRecommendationForFail = "Re-run `preflight check` once the cause above is resolved."
	StatusOutcomeFailedFmt      = "%s (%v)"

	// EndpointsUse is the endpoints command usage.
	EndpointsUse              = "endpoints [category]"
	EndpointsShort            = "Print the ordered mirror URLs for a service category"
	EndpointsCategoryHeader   = "%s:\n"
	EndpointsEntryFmt         = "  %d. %s\n"
	EndpointsUnknownFmt       = "unknown endpoint category %q (valid: %s)"
	EndpointsTooManyArguments = "endpoints accepts at most one category"

	// PromptNoDefaultFmt formats yes/no prompts with no as default.
	PromptNoDefaultFmt     = "%s [y/N]: "
	PromptInvalidResponse  = "Please answer y or n."
	PromptAlertFmt         = "%s: %s\n"
	PromptAssumedYesFmt    = "%s: assuming yes (--yes)\n"
	PromptRequiresTerminal = "interactive prompts require a terminal; re-run with --yes to install without asking"
)
