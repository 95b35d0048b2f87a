package messages

// Remediation dialog titles, bodies and log messages.
const (
	// RemediateDialogTitle is the title of every remediation dialog.
	RemediateDialogTitle = "Compatibility"

	RemediateConsentFmt         = "You do not have the %s installed.\n\nThis will install in the background.\n\nThis may restart your computer.\n\nSelect OK to install it."
	RemediateConsentAffirmative = "OK"
	RemediateConsentNegative    = "Cancel"

	RemediateDeclinedAlert       = "The game will not be started."
	RemediateDownloadFailedAlert = "Failed to download package installer. The game will not be started."
	RemediateInstallFailedAlert  = "Failed to run package installer. The game will not be started."

	RemediateLogChecking       = "checking runtime dependency"
	RemediateLogSkipped        = "runtime dependency not applicable to host architecture"
	RemediateLogSatisfied      = "runtime dependency is installed"
	RemediateLogNotApplicable  = "runtime dependency not required on this platform"
	RemediateLogProbeSoftFail  = "runtime dependency lookup failed; treating as not installed"
	RemediateLogConsentFailed  = "consent prompt failed; treating as declined"
	RemediateLogDeclined       = "user declined runtime dependency install"
	RemediateLogDownloadFailed = "runtime dependency download failed"
	RemediateLogInstallFailed  = "runtime dependency installer could not be started"
	RemediateLogInstallStarted = "runtime dependency installer started"
	RemediateLogAlertFailed    = "failed to show remediation alert"
	RemediateLogDone           = "runtime dependency checks complete"

	RemediateTransitionFmt = "%s -> %s"
)
