package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// LineUI prompts over plain reader/writer streams, for hosts without a TTY.
type LineUI struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineUI returns a LineUI reading answers from in and writing to out.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question that defaults to no. EOF counts as no.
func (ui *LineUI) Confirm(title string, message string) (bool, error) {
	if _, err := fmt.Fprintf(ui.out, messages.PromptAlertFmt, title, message); err != nil {
		return false, err
	}
	for {
		if _, err := fmt.Fprintf(ui.out, messages.PromptNoDefaultFmt, title); err != nil {
			return false, err
		}
		line, err := ui.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if _, err := fmt.Fprintln(ui.out, messages.PromptInvalidResponse); err != nil {
			return false, err
		}
	}
}

// Alert writes the message.
func (ui *LineUI) Alert(title string, message string) error {
	_, err := fmt.Fprintf(ui.out, messages.PromptAlertFmt, title, message)
	return err
}
