// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminalFunc = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// Remediation prompts fall back to line input when this is false.
func IsInteractive() bool {
	return isFileTerminal(os.Stdin) && isFileTerminal(os.Stdout)
}

func isFileTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminalFunc(int(f.Fd()))
}
