package prompt

import (
	"fmt"
	"io"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// AssumeYes accepts every confirmation and forwards alerts to Next.
type AssumeYes struct {
	Next UI
	Out  io.Writer
}

// Confirm records the assumed answer and returns true.
func (a AssumeYes) Confirm(title string, _ string) (bool, error) {
	if a.Out != nil {
		if _, err := fmt.Fprintf(a.Out, messages.PromptAssumedYesFmt, title); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Alert forwards to Next when set.
func (a AssumeYes) Alert(title string, message string) error {
	if a.Next == nil {
		return nil
	}
	return a.Next.Alert(title, message)
}

// ForTerminal picks HuhUI on an interactive terminal and LineUI otherwise,
// optionally wrapped in AssumeYes.
func ForTerminal(interactive bool, assumeYes bool, in io.Reader, out io.Writer) UI {
	var ui UI
	if interactive {
		ui = NewHuhUI()
	} else {
		ui = NewLineUI(in, out)
	}
	if assumeYes {
		return AssumeYes{Next: ui, Out: out}
	}
	return ui
}
