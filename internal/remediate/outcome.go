package remediate

import "errors"

// ErrDeclined is recorded on an outcome when the user refuses the install.
var ErrDeclined = errors.New("runtime dependency install declined")

// Outcome is the terminal record of one descriptor's run.
type Outcome struct {
	ID    string
	Name  string
	State State
	// Err is the cause of a failed or declined outcome.
	Err error
	// Path lists every state visited, starting with StateNotChecked.
	Path []State
	// Artifact is the downloaded installer path, when a download succeeded.
	Artifact string
}

// OK reports whether the outcome allows the launch to continue.
func (o Outcome) OK() bool {
	return o.State.Succeeded()
}

// Visited reports whether s appears anywhere in the outcome's path.
func (o Outcome) Visited(s State) bool {
	for _, p := range o.Path {
		if p == s {
			return true
		}
	}
	return false
}

// Result holds the ordered outcomes of one remediation pass.
type Result struct {
	Outcomes []Outcome
}

// ErrorFree is true when every outcome succeeded. An empty pass is error-free.
func (r Result) ErrorFree() bool {
	for _, o := range r.Outcomes {
		if !o.OK() {
			return false
		}
	}
	return true
}

// Failed returns the outcomes that block the launch, in order.
func (r Result) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}
