package remediate

import (
	"context"
	"path/filepath"

	"github.com/soapboxrace/launcher-preflight/internal/redist"
)

// Remediator obtains and installs a missing dependency.
type Remediator interface {
	// Download fetches the descriptor's installer and returns its local path.
	Download(ctx context.Context, d redist.Descriptor) (string, error)
	// Install starts the installer at artifact with elevated rights.
	Install(d redist.Descriptor, artifact string) error
}

// Fetcher saves a URL to a local file. Satisfied by *download.Downloader.
type Fetcher interface {
	Fetch(ctx context.Context, url string, dest string) error
}

// Runner starts an installer. Satisfied by *elevate.Installer.
type Runner interface {
	Run(path string, args []string) error
}

// Artifacts is the production Remediator: it downloads into Dir under the
// descriptor's fixed filename and runs the file elevated.
type Artifacts struct {
	Fetcher Fetcher
	Runner  Runner
	Dir     string
}

// ArtifactPath returns where d's installer is saved.
func (a *Artifacts) ArtifactPath(d redist.Descriptor) string {
	dir := a.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, d.ArtifactFile)
}

// Download fetches d.ArtifactURL, overwriting any previous file.
func (a *Artifacts) Download(ctx context.Context, d redist.Descriptor) (string, error) {
	path := a.ArtifactPath(d)
	if err := a.Fetcher.Fetch(ctx, d.ArtifactURL, path); err != nil {
		return "", err
	}
	return path, nil
}

// Install runs artifact with d's unattended arguments.
func (a *Artifacts) Install(d redist.Descriptor, artifact string) error {
	return a.Runner.Run(artifact, d.InstallArgs)
}
