// Package elevate starts downloaded installers with elevated privileges.
//
// Only process creation is checked. The installer's exit status is never read.
package elevate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// ErrArtifactMissing is returned when the installer file does not exist.
var ErrArtifactMissing = errors.New("installer artifact missing")

// Starter launches path with args and returns once the process exists.
type Starter interface {
	Start(path string, args []string) error
}

// StarterFunc adapts a function into a Starter.
type StarterFunc func(path string, args []string) error

// Start calls f.
func (f StarterFunc) Start(path string, args []string) error {
	return f(path, args)
}

var osStat = os.Stat

// Installer runs installers through a Starter.
type Installer struct {
	Starter Starter
}

// New returns an Installer using the platform's elevated starter.
func New() *Installer {
	return &Installer{Starter: DefaultStarter()}
}

// Run starts the installer at path. It returns an error only when the
// process could not be created.
func (i *Installer) Run(path string, args []string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf(messages.ElevateResolvePathFmt, path, err)
	}
	if _, err := osStat(abs); err != nil {
		return fmt.Errorf(messages.ElevateArtifactMissingFmt, abs, errors.Join(ErrArtifactMissing, err))
	}
	starter := i.Starter
	if starter == nil {
		starter = DefaultStarter()
	}
	if err := starter.Start(abs, args); err != nil {
		return fmt.Errorf(messages.ElevateStartFailedFmt, filepath.Base(abs), err)
	}
	return nil
}
