package remediate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_ErrorFree(t *testing.T) {
	assert.True(t, Result{}.ErrorFree())
	assert.True(t, Result{Outcomes: []Outcome{{State: StateSatisfied}, {State: StateVerified}, {State: StateSkipped}}}.ErrorFree())
	assert.False(t, Result{Outcomes: []Outcome{{State: StateSatisfied}, {State: StateDeclined}}}.ErrorFree())
}

func TestState_Terminal(t *testing.T) {
	terminal := []State{StateSkipped, StateSatisfied, StateDeclined, StateDownloadFailed, StateInstallFailed, StateVerified}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), s)
	}
	for _, s := range []State{StateNotChecked, StateChecking, StateNeedsInstall, StateAwaitingConsent, StateDownloading, StateInstalling} {
		assert.False(t, s.Terminal(), s)
	}
}

func TestOutcome_Visited(t *testing.T) {
	o := Outcome{Path: []State{StateNotChecked, StateChecking, StateSatisfied}}
	assert.True(t, o.Visited(StateChecking))
	assert.False(t, o.Visited(StateNeedsInstall))
}
