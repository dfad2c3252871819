//go:build unix

package osfs

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isNotEmpty reports whether a rename failed because the destination is an
// occupied directory. Some kernels report EEXIST instead of ENOTEMPTY for
// this case, so both map to the not-empty outcome.
func isNotEmpty(err error) bool {
	return errors.Is(err, unix.ENOTEMPTY) || errors.Is(err, unix.EEXIST)
}
