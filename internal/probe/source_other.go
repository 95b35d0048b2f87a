//go:build !windows

package probe

import (
	"fmt"
	"runtime"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

// unsupportedSource reports every lookup as unsupported.
type unsupportedSource struct{}

// DefaultSource returns a Source that never finds anything on this OS.
func DefaultSource() Source {
	return unsupportedSource{}
}

func (unsupportedSource) InstalledVersion(redist.Descriptor) (string, error) {
	return "", fmt.Errorf("%w: "+messages.ProbeUnsupportedHostFmt, ErrUnsupportedHost, runtime.GOOS)
}
