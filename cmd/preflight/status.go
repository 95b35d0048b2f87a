package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/probe"
	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.StatusUse,
		Short: messages.StatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = env.closeLog() }()

			out := cmd.OutOrStdout()
			p := &probe.Probe{Host: env.host, Source: newProbeSource()}
			missing := false
			for _, d := range redist.VisualCPP() {
				if !d.AppliesToArch(env.host) {
					printStatusLine(out, statusNotApplicable, d.Name, fmt.Sprintf(messages.StatusNotApplicableFmt, hostLabel(env.host)))
					continue
				}
				finding := p.Inspect(d)
				env.log.WithFields(logrus.Fields{
					"dependency": d.ID,
					"status":     string(finding.Status),
				}).Debug(messages.RemediateLogChecking)
				kind, detail := describeFinding(finding, env.host)
				if kind == statusMissing {
					missing = true
				}
				printStatusLine(out, kind, d.Name, detail)
			}

			_, _ = fmt.Fprintln(out)
			if missing {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.StatusSummaryMissing))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.StatusSummaryOK))
			return nil
		},
	}
}

// describeFinding maps a probe finding to a status label and detail text.
func describeFinding(f probe.Finding, host redist.Host) (statusKind, string) {
	switch f.Status {
	case probe.StatusNotApplicable:
		return statusNotApplicable, fmt.Sprintf(messages.StatusNotApplicableFmt, host.OS)
	case probe.StatusSatisfied:
		return statusOK, fmt.Sprintf(messages.StatusSatisfiedFmt, f.Version)
	}
	if f.Err != nil {
		return statusMissing, fmt.Sprintf(messages.StatusMissingCauseFmt, f.Err)
	}
	if f.Version != "" {
		return statusMissing, fmt.Sprintf(messages.StatusVersionRejectedFmt, f.Version)
	}
	return statusMissing, messages.StatusMissing
}
