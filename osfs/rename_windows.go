//go:build windows

package osfs

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isNotEmpty reports whether a rename failed because the destination is an
// occupied directory.
func isNotEmpty(err error) bool {
	return errors.Is(err, windows.ERROR_DIR_NOT_EMPTY) ||
		errors.Is(err, windows.ERROR_ALREADY_EXISTS)
}
