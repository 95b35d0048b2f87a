//go:build windows

package redist

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/windows"

	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

// is64BitOS reports whether Windows itself is 64-bit, including a 32-bit
// build running under WOW64.
func is64BitOS() (bool, error) {
	if strconv.IntSize == 64 {
		return true, nil
	}
	var wow64 bool
	if err := windows.IsWow64Process(windows.CurrentProcess(), &wow64); err != nil {
		return false, fmt.Errorf(messages.HostDetectWow64FailedFmt, err)
	}
	return wow64, nil
}
