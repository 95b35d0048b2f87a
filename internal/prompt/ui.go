// Package prompt asks the user for consent and shows remediation alerts.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/terminal"
)

// UI is the confirmation and alert surface used by remediation.
type UI interface {
	// Confirm blocks until the user accepts or refuses.
	Confirm(title string, message string) (bool, error)
	// Alert shows a message the user must acknowledge.
	Alert(title string, message string) error
}

// HuhUI implements UI using charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.PromptRequiresTerminal)
}

// promptKeyMap lets both Esc and Ctrl+C abort the form.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

// runForm validates terminal availability and runs form on stderr.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(promptKeyMap())
	form.WithProgramOptions(tea.WithOutput(os.Stderr))
	return runFormFunc(form)
}

// Confirm renders an OK/Cancel prompt. Aborting the form counts as Cancel.
func (ui *HuhUI) Confirm(title string, message string) (bool, error) {
	var accepted bool
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(message).
				Affirmative(messages.RemediateConsentAffirmative).
				Negative(messages.RemediateConsentNegative).
				Value(&accepted),
		),
	))
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return accepted, nil
}

// Alert renders an informational note.
func (ui *HuhUI) Alert(title string, message string) error {
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(message),
		),
	))
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
