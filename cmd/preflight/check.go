package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/probe"
	"github.com/soapboxrace/launcher-preflight/internal/redist"
	"github.com/soapboxrace/launcher-preflight/internal/remediate"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer func() { _ = env.closeLog() }()

			out := cmd.OutOrStdout()
			ui := newUI(isTerminal(), assumeYes || env.cfg.Prompt.AssumeYes, cmd.InOrStdin(), cmd.ErrOrStderr())
			controller := &remediate.Controller{
				Host:        env.host,
				Descriptors: redist.VisualCPP(),
				Checker:     &probe.Probe{Host: env.host, Source: newProbeSource()},
				UI:          ui,
				Remediator:  newRemediator(env.cfg, out),
				Log:         env.log,
				OnTransition: func(d redist.Descriptor, s remediate.State) {
					_, _ = fmt.Fprintf(out, messages.CheckProgress, d.ID, s)
				},
			}

			_, _ = fmt.Fprint(out, messages.CheckHeader)
			result := controller.Run(cmd.Context())

			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, messages.CheckSummaryHeader)
			for _, o := range result.Outcomes {
				printOutcome(out, o)
			}
			if !result.ErrorFree() {
				_, _ = fmt.Fprintln(out, color.RedString(messages.CheckSummaryFail))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.CheckSummaryOK))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, messages.CheckFlagYes)
	return cmd
}
