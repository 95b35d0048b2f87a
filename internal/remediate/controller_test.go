package remediate

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/probe"
	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

type fakeChecker struct {
	findings map[string]probe.Finding
	calls    []string
}

func (f *fakeChecker) Inspect(d redist.Descriptor) probe.Finding {
	f.calls = append(f.calls, d.ID)
	if finding, ok := f.findings[d.ID]; ok {
		return finding
	}
	return probe.Finding{Status: probe.StatusMissing}
}

type fakeUI struct {
	accept     bool
	confirmErr error
	alertErr   error
	confirms   []string
	alerts     []string
}

func (f *fakeUI) Confirm(_ string, message string) (bool, error) {
	f.confirms = append(f.confirms, message)
	return f.accept, f.confirmErr
}

func (f *fakeUI) Alert(_ string, message string) error {
	f.alerts = append(f.alerts, message)
	return f.alertErr
}

type fakeRemediator struct {
	downloadErr error
	installErr  error
	downloads   []string
	installs    []string
}

func (f *fakeRemediator) Download(_ context.Context, d redist.Descriptor) (string, error) {
	f.downloads = append(f.downloads, d.ID)
	if f.downloadErr != nil {
		return "", f.downloadErr
	}
	return "/tmp/" + d.ArtifactFile, nil
}

func (f *fakeRemediator) Install(d redist.Descriptor, artifact string) error {
	f.installs = append(f.installs, d.ID+"@"+artifact)
	return f.installErr
}

var (
	host64 = redist.Host{OS: redist.PlatformWindows, Is64Bit: true}
	host32 = redist.Host{OS: redist.PlatformWindows, Is64Bit: false}
)

func newController(host redist.Host, checker *fakeChecker, ui *fakeUI, rem *fakeRemediator) (*Controller, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return &Controller{
		Host:        host,
		Descriptors: redist.VisualCPP(),
		Checker:     checker,
		UI:          ui,
		Remediator:  rem,
		Log:         logger,
	}, hook
}

func satisfiedFinding() probe.Finding {
	return probe.Finding{Status: probe.StatusSatisfied, Version: "v14.29.30133.00"}
}

func messagesAt(hook *test.Hook, level logrus.Level) []string {
	var out []string
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestRun_AllSatisfied(t *testing.T) {
	checker := &fakeChecker{findings: map[string]probe.Finding{
		"vc2015-2019-x86": satisfiedFinding(),
		"vc2015-2019-x64": satisfiedFinding(),
	}}
	ui := &fakeUI{}
	rem := &fakeRemediator{}
	c, hook := newController(host64, checker, ui, rem)

	result := c.Run(context.Background())

	require.Len(t, result.Outcomes, 2)
	assert.True(t, result.ErrorFree())
	for _, o := range result.Outcomes {
		assert.Equal(t, StateSatisfied, o.State)
		assert.Equal(t, []State{StateNotChecked, StateChecking, StateSatisfied}, o.Path)
		assert.NoError(t, o.Err)
	}
	assert.Empty(t, ui.confirms)
	assert.Empty(t, rem.downloads)
	assert.Equal(t, messages.RemediateLogDone, hook.LastEntry().Message)
	assert.Equal(t, true, hook.LastEntry().Data["error_free"])
}

func TestRun_NotApplicablePlatformIsSatisfied(t *testing.T) {
	checker := &fakeChecker{findings: map[string]probe.Finding{
		"vc2015-2019-x86": {Status: probe.StatusNotApplicable},
		"vc2015-2019-x64": {Status: probe.StatusNotApplicable},
	}}
	c, _ := newController(redist.Host{OS: "linux", Is64Bit: true}, checker, &fakeUI{}, &fakeRemediator{})

	result := c.Run(context.Background())

	assert.True(t, result.ErrorFree())
	assert.Equal(t, StateSatisfied, result.Outcomes[0].State)
}

func TestRun_X64NeverEvaluatedOn32BitHost(t *testing.T) {
	checker := &fakeChecker{findings: map[string]probe.Finding{
		"vc2015-2019-x86": satisfiedFinding(),
	}}
	var transitions []string
	c, _ := newController(host32, checker, &fakeUI{}, &fakeRemediator{})
	c.OnTransition = func(d redist.Descriptor, s State) {
		transitions = append(transitions, d.ID+":"+string(s))
	}

	result := c.Run(context.Background())

	assert.Equal(t, []string{"vc2015-2019-x86"}, checker.calls)
	require.Len(t, result.Outcomes, 2)
	x64 := result.Outcomes[1]
	assert.Equal(t, "vc2015-2019-x64", x64.ID)
	assert.Equal(t, StateSkipped, x64.State)
	assert.False(t, x64.Visited(StateChecking))
	assert.True(t, result.ErrorFree())
	assert.Contains(t, transitions, "vc2015-2019-x64:skipped")
}

func TestRun_LookupErrorNeedsInstall(t *testing.T) {
	checker := &fakeChecker{findings: map[string]probe.Finding{
		"vc2015-2019-x86": {Status: probe.StatusMissing, Err: errors.New("access denied")},
		"vc2015-2019-x64": satisfiedFinding(),
	}}
	ui := &fakeUI{accept: true}
	rem := &fakeRemediator{}
	c, hook := newController(host64, checker, ui, rem)

	result := c.Run(context.Background())

	x86 := result.Outcomes[0]
	assert.True(t, x86.Visited(StateNeedsInstall))
	assert.Equal(t, StateVerified, x86.State)
	assert.Contains(t, messagesAt(hook, logrus.WarnLevel), messages.RemediateLogProbeSoftFail)
}

func TestRun_AcceptDownloadsAndInstalls(t *testing.T) {
	checker := &fakeChecker{}
	ui := &fakeUI{accept: true}
	rem := &fakeRemediator{}
	c, _ := newController(host64, checker, ui, rem)

	result := c.Run(context.Background())

	assert.True(t, result.ErrorFree())
	assert.Equal(t, []string{"vc2015-2019-x86", "vc2015-2019-x64"}, rem.downloads)
	assert.Equal(t, []string{
		"vc2015-2019-x86@/tmp/VC_redist.x86.exe",
		"vc2015-2019-x64@/tmp/VC_redist.x64.exe",
	}, rem.installs)
	require.Len(t, ui.confirms, 2)
	assert.Contains(t, ui.confirms[0], "32-bit 2015-2019 VC++ Redistributable Package")
	assert.Empty(t, ui.alerts)
	assert.Equal(t, []State{
		StateNotChecked, StateChecking, StateNeedsInstall, StateAwaitingConsent,
		StateDownloading, StateInstalling, StateVerified,
	}, result.Outcomes[0].Path)
	assert.Equal(t, "/tmp/VC_redist.x86.exe", result.Outcomes[0].Artifact)
}

func TestRun_DeclineSkipsDownload(t *testing.T) {
	checker := &fakeChecker{}
	ui := &fakeUI{accept: false}
	rem := &fakeRemediator{}
	c, hook := newController(host64, checker, ui, rem)

	result := c.Run(context.Background())

	assert.False(t, result.ErrorFree())
	assert.Empty(t, rem.downloads)
	assert.Empty(t, rem.installs)
	for _, o := range result.Outcomes {
		assert.Equal(t, StateDeclined, o.State)
		assert.ErrorIs(t, o.Err, ErrDeclined)
	}
	assert.Equal(t, []string{messages.RemediateDeclinedAlert, messages.RemediateDeclinedAlert}, ui.alerts)
	assert.Contains(t, messagesAt(hook, logrus.WarnLevel), messages.RemediateLogDeclined)
}

func TestRun_PromptErrorIsDecline(t *testing.T) {
	promptErr := errors.New("no terminal")
	ui := &fakeUI{accept: true, confirmErr: promptErr}
	rem := &fakeRemediator{}
	c, hook := newController(host64, &fakeChecker{}, ui, rem)

	result := c.Run(context.Background())

	assert.False(t, result.ErrorFree())
	assert.Empty(t, rem.downloads)
	o := result.Outcomes[0]
	assert.Equal(t, StateDeclined, o.State)
	assert.ErrorIs(t, o.Err, ErrDeclined)
	assert.ErrorIs(t, o.Err, promptErr)
	assert.Contains(t, messagesAt(hook, logrus.WarnLevel), messages.RemediateLogConsentFailed)
}

func TestRun_DownloadFailureSkipsInstall(t *testing.T) {
	downloadErr := errors.New("connection reset")
	ui := &fakeUI{accept: true}
	rem := &fakeRemediator{downloadErr: downloadErr}
	c, hook := newController(host64, &fakeChecker{}, ui, rem)

	result := c.Run(context.Background())

	assert.False(t, result.ErrorFree())
	assert.Len(t, rem.downloads, 2, "a failure must not stop later descriptors")
	assert.Empty(t, rem.installs)
	for _, o := range result.Outcomes {
		assert.Equal(t, StateDownloadFailed, o.State)
		assert.ErrorIs(t, o.Err, downloadErr)
		assert.Empty(t, o.Artifact)
	}
	assert.Equal(t, messages.RemediateDownloadFailedAlert, ui.alerts[0])

	errorsLogged := messagesAt(hook, logrus.ErrorLevel)
	assert.Contains(t, errorsLogged, messages.RemediateLogDownloadFailed)
	assert.NotContains(t, errorsLogged, messages.RemediateLogInstallFailed)
}

func TestRun_StartFailureIsInstallFailed(t *testing.T) {
	startErr := errors.New("the operation was canceled by the user")
	ui := &fakeUI{accept: true}
	rem := &fakeRemediator{installErr: startErr}
	c, hook := newController(host64, &fakeChecker{}, ui, rem)

	result := c.Run(context.Background())

	assert.False(t, result.ErrorFree())
	o := result.Outcomes[0]
	assert.Equal(t, StateInstallFailed, o.State)
	assert.ErrorIs(t, o.Err, startErr)
	assert.Equal(t, messages.RemediateInstallFailedAlert, ui.alerts[0])

	errorsLogged := messagesAt(hook, logrus.ErrorLevel)
	assert.Contains(t, errorsLogged, messages.RemediateLogInstallFailed)
	assert.NotContains(t, errorsLogged, messages.RemediateLogDownloadFailed)
	assert.NotEqual(t, messages.RemediateLogInstallFailed, messages.RemediateLogDownloadFailed)
}

func TestRun_StartedInstallerIsVerified(t *testing.T) {
	// The fake mirrors an installer that starts and later exits nonzero:
	// only start failures are observable.
	rem := &fakeRemediator{}
	c, hook := newController(host32, &fakeChecker{}, &fakeUI{accept: true}, rem)

	result := c.Run(context.Background())

	assert.True(t, result.ErrorFree())
	assert.Equal(t, StateVerified, result.Outcomes[0].State)
	assert.Contains(t, messagesAt(hook, logrus.InfoLevel), messages.RemediateLogInstallStarted)
}

func TestRun_AlertFailureIsLogged(t *testing.T) {
	ui := &fakeUI{accept: false, alertErr: errors.New("closed")}
	c, hook := newController(host32, &fakeChecker{}, ui, &fakeRemediator{})

	result := c.Run(context.Background())

	assert.Equal(t, StateDeclined, result.Outcomes[0].State)
	assert.Contains(t, messagesAt(hook, logrus.WarnLevel), messages.RemediateLogAlertFailed)
}

func TestRun_MixedOutcomes(t *testing.T) {
	checker := &fakeChecker{findings: map[string]probe.Finding{
		"vc2015-2019-x86": satisfiedFinding(),
	}}
	rem := &fakeRemediator{downloadErr: errors.New("timeout")}
	c, _ := newController(host64, checker, &fakeUI{accept: true}, rem)

	result := c.Run(context.Background())

	assert.False(t, result.ErrorFree())
	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "vc2015-2019-x64", failed[0].ID)
}

func TestRun_NilLogger(t *testing.T) {
	c := &Controller{
		Host:        host32,
		Descriptors: redist.VisualCPP(),
		Checker:     &fakeChecker{},
		UI:          &fakeUI{accept: true},
		Remediator:  &fakeRemediator{},
	}
	assert.NotPanics(t, func() { c.Run(context.Background()) })
}

func TestRun_TransitionsReported(t *testing.T) {
	var seen []State
	c, _ := newController(host32, &fakeChecker{}, &fakeUI{accept: true}, &fakeRemediator{})
	c.Descriptors = redist.VisualCPP()[:1]
	c.OnTransition = func(_ redist.Descriptor, s State) { seen = append(seen, s) }

	c.Run(context.Background())

	assert.Equal(t, []State{
		StateChecking, StateNeedsInstall, StateAwaitingConsent,
		StateDownloading, StateInstalling, StateVerified,
	}, seen)
}
