//go:build !windows

package elevate

import "os/exec"

// execStarter starts the installer with the caller's own privileges.
type execStarter struct{}

// DefaultStarter returns a starter that execs path directly.
func DefaultStarter() Starter {
	return execStarter{}
}

// Start launches the process and reaps it in the background.
func (execStarter) Start(path string, args []string) error {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
