//go:build !unix && !windows

package osfs

import (
	"errors"
	"io/fs"
)

// isNotEmpty reports whether a rename failed because the destination is an
// occupied directory. Platforms without a dedicated errno fall back on the
// generic exist error.
func isNotEmpty(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
