package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/remediate"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusMissing
	statusNotApplicable
	statusFail
)

func statusLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return color.GreenString(messages.StatusLabelOK)
	case statusMissing:
		return color.YellowString(messages.StatusLabelMissing)
	case statusNotApplicable:
		return color.CyanString(messages.StatusLabelNotApplicable)
	default:
		return color.RedString(messages.StatusLabelFail)
	}
}

func printStatusLine(out io.Writer, kind statusKind, name string, detail string) {
	_, _ = fmt.Fprintf(out, messages.StatusLineFmt, statusLabel(kind), name, detail)
}

// printOutcome renders one remediation outcome with a follow-up hint on failure.
func printOutcome(out io.Writer, o remediate.Outcome) {
	switch {
	case o.State == remediate.StateSkipped:
		printStatusLine(out, statusNotApplicable, o.Name, string(o.State))
	case o.OK():
		printStatusLine(out, statusOK, o.Name, string(o.State))
	default:
		detail := string(o.State)
		if o.Err != nil {
			detail = fmt.Sprintf(messages.StatusOutcomeFailedFmt, o.State, o.Err)
		}
		printStatusLine(out, statusFail, o.Name, detail)
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.StatusRecommendationPrefix, messages.StatusRecommendationForFail)
	}
}
