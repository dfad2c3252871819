//go:build unix

package osfs

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// chtimes sets a path's access and modification times with nanosecond
// precision. The filesystem may still truncate to its own resolution.
func chtimes(name string, atime, mtime time.Time) error {
	ts := []unix.Timespec{
		unix.NsecToTimespec(atime.UnixNano()),
		unix.NsecToTimespec(mtime.UnixNano()),
	}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, name, ts, 0); err != nil {
		return &fs.PathError{Op: "chtimes", Path: name, Err: err}
	}
	return nil
}
