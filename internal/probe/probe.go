// Package probe detects installed runtime package versions without side effects.
//
// Probing is soft-fail: every lookup problem is reported as "missing" with the
// cause attached for logging, never as an error.
package probe

import (
	"errors"

	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

// ErrUnsupportedHost is returned by sources that cannot look up versions on this OS.
var ErrUnsupportedHost = errors.New("version lookup unsupported on this host")

// Source looks up the installed version for a descriptor.
// Implementations are read-only and must release any handle before returning.
type Source interface {
	InstalledVersion(d redist.Descriptor) (string, error)
}

// Status classifies a probe finding.
type Status string

const (
	// StatusNotApplicable means the descriptor belongs to another platform.
	StatusNotApplicable Status = "not-applicable"
	// StatusSatisfied means an acceptable version is installed.
	StatusSatisfied Status = "satisfied"
	// StatusMissing means the lookup failed or the version was rejected.
	StatusMissing Status = "missing"
)

// Finding is the result of inspecting one descriptor.
type Finding struct {
	Status  Status
	Version string
	// Err holds the lookup failure folded into StatusMissing, if any.
	Err error
}

// Satisfied reports whether no remediation is needed.
func (f Finding) Satisfied() bool {
	return f.Status == StatusSatisfied || f.Status == StatusNotApplicable
}

// Probe checks descriptors against the host.
type Probe struct {
	Host   redist.Host
	Source Source
}

// New returns a Probe backed by the platform's default Source.
func New(host redist.Host) *Probe {
	return &Probe{Host: host, Source: DefaultSource()}
}

// Inspect reports the descriptor's status on this host.
// Descriptors owned by another platform never reach the Source.
func (p *Probe) Inspect(d redist.Descriptor) Finding {
	if !d.OwnedBy(p.Host) {
		return Finding{Status: StatusNotApplicable}
	}
	if p.Source == nil {
		return Finding{Status: StatusMissing, Err: ErrUnsupportedHost}
	}
	version, err := p.Source.InstalledVersion(d)
	if err != nil {
		return Finding{Status: StatusMissing, Err: err}
	}
	if !d.Accepts(version) {
		return Finding{Status: StatusMissing, Version: version}
	}
	return Finding{Status: StatusSatisfied, Version: version}
}

// IsSatisfied reports whether d needs no remediation on this host.
func (p *Probe) IsSatisfied(d redist.Descriptor) bool {
	return p.Inspect(d).Satisfied()
}
