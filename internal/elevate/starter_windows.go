//go:build windows

package elevate

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// runasStarter asks the shell to start the installer through UAC.
type runasStarter struct{}

// DefaultStarter returns the UAC "runas" starter.
func DefaultStarter() Starter {
	return runasStarter{}
}

// Start fails when the user refuses the elevation prompt or the shell
// cannot create the process.
func (runasStarter) Start(path string, args []string) error {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	params, err := windows.UTF16PtrFromString(strings.Join(args, " "))
	if err != nil {
		return err
	}
	dir, err := windows.UTF16PtrFromString(filepath.Dir(path))
	if err != nil {
		return err
	}
	return windows.ShellExecute(0, verb, file, params, dir, windows.SW_SHOWNORMAL)
}
