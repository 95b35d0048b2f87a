//go:build !windows

package redist

import "strconv"

func is64BitOS() (bool, error) {
	return strconv.IntSize == 64, nil
}
