package redist

import "runtime"

// Host is the platform and architecture class of the running machine.
type Host struct {
	OS      string
	Is64Bit bool
}

var is64BitOSFunc = is64BitOS

// DetectHost reports the current host. When the architecture cannot be
// determined the host is reported as 32-bit alongside the error.
func DetectHost() (Host, error) {
	is64, err := is64BitOSFunc()
	return Host{OS: runtime.GOOS, Is64Bit: is64 && err == nil}, err
}
