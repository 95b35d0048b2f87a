// Package download fetches remediation installers over a hardened transport.
package download

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// Environment knobs.
const (
	EnvNoNetwork        = "PREFLIGHT_NO_NETWORK"
	EnvMaxDownloadBytes = "PREFLIGHT_MAX_DOWNLOAD_BYTES"
)

// Homepage is advertised in the User-Agent header.
const Homepage = "https://github.com/SoapBoxRaceWorld/GameLauncher_NFSW"

// MinTLSVersion is the lowest protocol version the transport negotiates.
const MinTLSVersion = tls.VersionTLS12

const (
	// DefaultMaxBytes bounds a single installer download.
	DefaultMaxBytes      = int64(200 * 1024 * 1024)
	connectionLease      = time.Minute
	downloadRetryCount   = 1
	downloadRetryBackoff = 250 * time.Millisecond
)

// ErrNetworkDisabled is returned when downloads are turned off via EnvNoNetwork.
var ErrNetworkDisabled = errors.New("network access disabled")

var (
	osCreateTemp  = os.CreateTemp
	osRename      = os.Rename
	downloadSleep = time.Sleep
	getenv        = os.Getenv
)

// Options configures a Downloader.
type Options struct {
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBytes caps the response size; zero means DefaultMaxBytes.
	MaxBytes int64
	// RootCAs overrides the system trust store.
	RootCAs *x509.CertPool
	// Progress receives one line per completed download.
	Progress io.Writer
}

// Downloader fetches artifacts to fixed local paths.
type Downloader struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	progress  io.Writer
}

// UserAgent formats the launcher's identifying header value.
func UserAgent(product string, version string) string {
	return fmt.Sprintf(messages.DownloadUserAgentFmt, product, version, Homepage)
}

// New builds a Downloader. The transport is hardened once here and reused
// for every request the Downloader makes.
func New(opts Options) *Downloader {
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	return &Downloader{
		client:    &http.Client{Transport: HardenedTransport(opts.RootCAs)},
		userAgent: opts.UserAgent,
		maxBytes:  maxBytes,
		progress:  progress,
	}
}

// HardenedTransport clones the default transport and refuses protocol
// versions below MinTLSVersion.
func HardenedTransport(rootCAs *x509.CertPool) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion: MinTLSVersion,
		RootCAs:    rootCAs,
	}
	transport.IdleConnTimeout = connectionLease
	return transport
}

// Fetch downloads url into dest, replacing any existing file. The body is
// streamed to a temp file beside dest and renamed into place only after it
// was written completely.
func (d *Downloader) Fetch(ctx context.Context, url string, dest string) error {
	if strings.TrimSpace(getenv(EnvNoNetwork)) != "" {
		return fmt.Errorf("%w: "+messages.DownloadNetworkDisabledFmt, ErrNetworkDisabled, url, EnvNoNetwork)
	}
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.DownloadCreateDirFmt, err)
	}

	tmp, err := osCreateTemp(dir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.DownloadCreateTempFileFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := d.downloadToFile(ctx, url, tmp)
	if err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.DownloadSyncTempFileFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.DownloadCloseTempFileFmt, err)
	}
	if err := osRename(tmpName, dest); err != nil {
		return fmt.Errorf(messages.DownloadMoveIntoPlaceFmt, err)
	}
	committed = true
	_, _ = fmt.Fprintf(d.progress, messages.DownloadedFmt, filepath.Base(dest), n)
	return nil
}

// downloadToFile fetches url into dest, retrying once on network errors and 5xx.
func (d *Downloader) downloadToFile(ctx context.Context, url string, dest *os.File) (int64, error) {
	maxBytes := d.effectiveMaxBytes()
	for attempt := 0; attempt <= downloadRetryCount; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return 0, fmt.Errorf(messages.DownloadCreateRequestFmt, url, err)
		}
		if d.userAgent != "" {
			req.Header.Set("User-Agent", d.userAgent)
		}

		resp, err := d.client.Do(req)
		if err != nil {
			if shouldRetryDownload(attempt, err, 0) {
				downloadSleep(downloadRetryBackoff)
				continue
			}
			if isTimeoutError(err) {
				return 0, fmt.Errorf(messages.DownloadTimeoutFmt, url)
			}
			return 0, fmt.Errorf(messages.DownloadFailedFmt, url, err)
		}

		if resp.StatusCode != http.StatusOK {
			status := resp.StatusCode
			statusText := resp.Status
			_ = resp.Body.Close()
			if shouldRetryDownload(attempt, nil, status) {
				downloadSleep(downloadRetryBackoff)
				continue
			}
			return 0, fmt.Errorf(messages.DownloadUnexpectedStatusFmt, url, statusText)
		}

		if err := dest.Truncate(0); err != nil {
			_ = resp.Body.Close()
			return 0, fmt.Errorf(messages.DownloadTruncateTempFileFmt, err)
		}
		if _, err := dest.Seek(0, io.SeekStart); err != nil {
			_ = resp.Body.Close()
			return 0, fmt.Errorf(messages.DownloadResetTempFileFmt, err)
		}

		n, copyErr := io.Copy(dest, io.LimitReader(resp.Body, maxBytes+1))
		_ = resp.Body.Close()
		if copyErr != nil {
			if shouldRetryDownload(attempt, copyErr, 0) {
				downloadSleep(downloadRetryBackoff)
				continue
			}
			return 0, fmt.Errorf(messages.DownloadFailedFmt, url, copyErr)
		}
		if n > maxBytes {
			return 0, fmt.Errorf(messages.DownloadTooLargeFmt, url, n, maxBytes)
		}
		return n, nil
	}
	return 0, fmt.Errorf(messages.DownloadFailedFmt, url, errors.New(messages.DownloadRetryBudgetExhausted))
}

// effectiveMaxBytes applies EnvMaxDownloadBytes over the configured limit.
func (d *Downloader) effectiveMaxBytes() int64 {
	raw := strings.TrimSpace(getenv(EnvMaxDownloadBytes))
	if raw == "" {
		return d.maxBytes
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return d.maxBytes
	}
	return v
}

// isTimeoutError reports whether err is a network timeout.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func shouldRetryDownload(attempt int, err error, statusCode int) bool {
	if attempt >= downloadRetryCount {
		return false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		var netErr net.Error
		return errors.As(err, &netErr)
	}
	return statusCode >= 500 && statusCode <= 599
}
