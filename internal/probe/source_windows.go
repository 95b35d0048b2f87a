//go:build windows

package probe

import (
	"golang.org/x/sys/windows/registry"

	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

// RegistrySource reads descriptor versions from HKEY_LOCAL_MACHINE.
// The 32-bit view is used because the VC++ installers register both
// architectures there.
type RegistrySource struct {
	open keyOpener
}

// DefaultSource returns the registry-backed Source.
func DefaultSource() Source {
	return RegistrySource{}
}

// InstalledVersion reads d.RegistryValue under d.RegistryKey.
func (s RegistrySource) InstalledVersion(d redist.Descriptor) (string, error) {
	open := s.open
	if open == nil {
		open = openLocalMachine
	}
	return readVersion(open, d.RegistryKey, d.RegistryValue)
}

func openLocalMachine(path string) (valueKey, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		return nil, err
	}
	return key, nil
}
