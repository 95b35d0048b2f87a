package redist

// VC++ 2015-2019 redistributable descriptor IDs.
const (
	VC2015to2019x86 = "vc2015-2019-x86"
	VC2015to2019x64 = "vc2015-2019-x64"
)

const (
	vcRuntimesKey   = `SOFTWARE\Microsoft\VisualStudio\14.0\VC\Runtimes\`
	vcVersionValue  = "Version"
	vcVersionPrefix = "v14.2"
	vcDownloadBase  = "https://aka.ms/vs/16/release/"
	vcQuietArg      = "/quiet"
)

// VisualCPP returns the Visual C++ 2015-2019 descriptors in check order:
// the 32-bit package always runs first, the 64-bit package only on 64-bit hosts.
func VisualCPP() []Descriptor {
	return []Descriptor{
		vcDescriptor(VC2015to2019x86, "32-bit 2015-2019 VC++ Redistributable Package", ArchX86),
		vcDescriptor(VC2015to2019x64, "64-bit 2015-2019 VC++ Redistributable Package", ArchX64),
	}
}

func vcDescriptor(id string, name string, arch Arch) Descriptor {
	file := "VC_redist." + string(arch) + ".exe"
	return Descriptor{
		ID:            id,
		Name:          name,
		Platform:      PlatformWindows,
		Arch:          arch,
		RegistryKey:   vcRuntimesKey + string(arch),
		RegistryValue: vcVersionValue,
		Accept:        PrefixPredicate(vcVersionPrefix),
		ArtifactURL:   vcDownloadBase + file,
		ArtifactFile:  file,
		InstallArgs:   []string{vcQuietArg},
	}
}
