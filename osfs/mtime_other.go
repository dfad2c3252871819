//go:build !unix

package osfs

import (
	"os"
	"time"
)

// chtimes sets a path's access and modification times through the portable
// stdlib path. Windows file times carry 100ns resolution, comfortably inside
// the sentinel's tolerance window.
func chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
