package probe

import (
	"fmt"
	"strings"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// valueKey is the subset of an open registry key used for version reads.
type valueKey interface {
	GetStringValue(name string) (string, uint32, error)
	Close() error
}

type keyOpener func(path string) (valueKey, error)

// readVersion opens path, reads the named string value and closes the key on
// every path. A close failure is reported only when the read succeeded.
func readVersion(open keyOpener, path string, value string) (version string, err error) {
	key, err := open(path)
	if err != nil {
		return "", fmt.Errorf(messages.ProbeOpenKeyFmt, path, err)
	}
	defer func() {
		if closeErr := key.Close(); closeErr != nil && err == nil {
			version = ""
			err = fmt.Errorf(messages.ProbeCloseKeyFmt, path, closeErr)
		}
	}()

	raw, _, err := key.GetStringValue(value)
	if err != nil {
		return "", fmt.Errorf(messages.ProbeReadValueFmt, path, value, err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf(messages.ProbeEmptyValueFmt, path, value)
	}
	return raw, nil
}
