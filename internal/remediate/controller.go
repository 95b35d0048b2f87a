package remediate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/probe"
	"github.com/soapboxrace/launcher-preflight/internal/prompt"
	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

// Checker inspects whether a descriptor is already satisfied.
type Checker interface {
	Inspect(d redist.Descriptor) probe.Finding
}

// Controller runs the remediation state machine over Descriptors in order.
// Every field except Log and OnTransition is required.
type Controller struct {
	Host        redist.Host
	Descriptors []redist.Descriptor
	Checker     Checker
	UI          prompt.UI
	Remediator  Remediator
	Log         logrus.FieldLogger
	// OnTransition, when set, is called after every state change.
	OnTransition func(d redist.Descriptor, s State)
}

// Run evaluates every descriptor and returns the aggregate. A failure on one
// descriptor never stops the next one from being evaluated.
func (c *Controller) Run(ctx context.Context) Result {
	var result Result
	for _, d := range c.Descriptors {
		result.Outcomes = append(result.Outcomes, c.runOne(ctx, d))
	}
	c.logger().WithField("error_free", result.ErrorFree()).Info(messages.RemediateLogDone)
	return result
}

func (c *Controller) logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// step tracks one descriptor's progress through the state machine.
type step struct {
	c       *Controller
	d       redist.Descriptor
	log     logrus.FieldLogger
	outcome Outcome
}

func (s *step) to(next State) {
	prev := s.outcome.State
	s.outcome.State = next
	s.outcome.Path = append(s.outcome.Path, next)
	s.log.Debugf(messages.RemediateTransitionFmt, prev, next)
	if s.c.OnTransition != nil {
		s.c.OnTransition(s.d, next)
	}
}

func (s *step) fail(state State, err error, logMsg string, alert string) Outcome {
	s.outcome.Err = err
	s.to(state)
	entry := s.log
	if err != nil {
		entry = entry.WithError(err)
	}
	if state == StateDeclined {
		entry.Warn(logMsg)
	} else {
		entry.Error(logMsg)
	}
	if alertErr := s.c.UI.Alert(messages.RemediateDialogTitle, alert); alertErr != nil {
		s.log.WithError(alertErr).Warn(messages.RemediateLogAlertFailed)
	}
	return s.outcome
}

func (c *Controller) runOne(ctx context.Context, d redist.Descriptor) Outcome {
	s := &step{
		c: c,
		d: d,
		log: c.logger().WithFields(logrus.Fields{
			"dependency": d.ID,
			"arch":       string(d.Arch),
		}),
		outcome: Outcome{ID: d.ID, Name: d.Name, State: StateNotChecked, Path: []State{StateNotChecked}},
	}

	// Architecture applicability is decided before any detection I/O.
	if !d.AppliesToArch(c.Host) {
		s.log.Info(messages.RemediateLogSkipped)
		s.to(StateSkipped)
		return s.outcome
	}

	s.log.Debug(messages.RemediateLogChecking)
	s.to(StateChecking)
	finding := c.Checker.Inspect(d)
	switch finding.Status {
	case probe.StatusNotApplicable:
		s.log.Info(messages.RemediateLogNotApplicable)
		s.to(StateSatisfied)
		return s.outcome
	case probe.StatusSatisfied:
		s.log.WithField("version", finding.Version).Info(messages.RemediateLogSatisfied)
		s.to(StateSatisfied)
		return s.outcome
	}
	if finding.Err != nil {
		s.log.WithError(finding.Err).Warn(messages.RemediateLogProbeSoftFail)
	}
	s.to(StateNeedsInstall)

	s.to(StateAwaitingConsent)
	accepted, err := c.UI.Confirm(messages.RemediateDialogTitle, fmt.Sprintf(messages.RemediateConsentFmt, d.Name))
	if err != nil {
		s.log.WithError(err).Warn(messages.RemediateLogConsentFailed)
		return s.fail(StateDeclined, errors.Join(ErrDeclined, err), messages.RemediateLogDeclined, messages.RemediateDeclinedAlert)
	}
	if !accepted {
		return s.fail(StateDeclined, ErrDeclined, messages.RemediateLogDeclined, messages.RemediateDeclinedAlert)
	}

	s.to(StateDownloading)
	artifact, err := c.Remediator.Download(ctx, d)
	if err != nil {
		return s.fail(StateDownloadFailed, err, messages.RemediateLogDownloadFailed, messages.RemediateDownloadFailedAlert)
	}
	s.outcome.Artifact = artifact

	s.to(StateInstalling)
	if err := c.Remediator.Install(d, artifact); err != nil {
		return s.fail(StateInstallFailed, err, messages.RemediateLogInstallFailed, messages.RemediateInstallFailedAlert)
	}
	// The installer's exit status is not observed; a started process counts.
	s.log.WithField("artifact", artifact).Info(messages.RemediateLogInstallStarted)
	s.to(StateVerified)
	return s.outcome
}
