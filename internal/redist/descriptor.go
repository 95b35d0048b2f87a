// Package redist describes the native runtime packages the launcher depends on.
package redist

import "strings"

// PlatformWindows is the owning platform for registry-backed descriptors.
const PlatformWindows = "windows"

// Arch is the architecture variant a descriptor installs.
type Arch string

const (
	// ArchX86 applies to every host.
	ArchX86 Arch = "x86"
	// ArchX64 applies only to 64-bit hosts.
	ArchX64 Arch = "x64"
)

// VersionPredicate reports whether an installed version string is acceptable.
type VersionPredicate func(version string) bool

// PrefixPredicate accepts versions starting with prefix.
func PrefixPredicate(prefix string) VersionPredicate {
	return func(version string) bool {
		return strings.HasPrefix(version, prefix)
	}
}

// Descriptor is the build-time record for one dependency check.
// Treat values as immutable; the catalog hands out fresh copies.
type Descriptor struct {
	ID       string
	Name     string
	Platform string
	Arch     Arch

	// RegistryKey is relative to HKEY_LOCAL_MACHINE.
	RegistryKey   string
	RegistryValue string
	Accept        VersionPredicate

	ArtifactURL  string
	ArtifactFile string
	InstallArgs  []string
}

// OwnedBy reports whether the descriptor's platform matches the host OS.
func (d Descriptor) OwnedBy(h Host) bool {
	return d.Platform == h.OS
}

// AppliesToArch reports whether the host architecture class needs this variant.
func (d Descriptor) AppliesToArch(h Host) bool {
	switch d.Arch {
	case ArchX64:
		return h.Is64Bit
	default:
		return true
	}
}

// Accepts applies the version predicate. Blank versions never match.
func (d Descriptor) Accepts(version string) bool {
	version = strings.TrimSpace(version)
	if version == "" || d.Accept == nil {
		return false
	}
	return d.Accept(version)
}
