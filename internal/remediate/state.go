// Package remediate drives per-dependency detection, consent, download and
// elevated install, and aggregates the results of one pass.
package remediate

// State is a step in the remediation state machine of one descriptor.
type State string

const (
	StateNotChecked      State = "not-checked"
	StateSkipped         State = "skipped"
	StateChecking        State = "checking"
	StateSatisfied       State = "satisfied"
	StateNeedsInstall    State = "needs-install"
	StateAwaitingConsent State = "awaiting-consent"
	StateDeclined        State = "declined"
	StateDownloading     State = "downloading"
	StateDownloadFailed  State = "download-failed"
	StateInstalling      State = "installing"
	StateInstallFailed   State = "install-failed"
	StateVerified        State = "verified"
)

// Terminal reports whether no further transition can follow s.
func (s State) Terminal() bool {
	switch s {
	case StateSkipped, StateSatisfied, StateDeclined, StateDownloadFailed, StateInstallFailed, StateVerified:
		return true
	default:
		return false
	}
}

// Succeeded reports whether s is a terminal state that lets the launch proceed.
func (s State) Succeeded() bool {
	return s == StateSkipped || s == StateSatisfied || s == StateVerified
}
