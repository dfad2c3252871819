package osfs

import (
	"os"

	"go.uber.org/zap"

	"github.com/DroidSky/bazel/pathutil"
)

// The distant-future sentinel marks a file as deliberately stamped, letting
// build tooling distinguish cache-fresh outputs from genuinely touched files
// using nothing but standard filesystem metadata. Any ordinary operation
// that rewrites the file resets its mtime and clears the mark.

// SetMtimeToNow sets the named file's access and modification time to the
// current wall-clock time. It fails if the path does not exist.
func (f *FS) SetMtimeToNow(name string) error {
	name = pathutil.Normalize(name)
	now := f.now()
	if err := chtimes(name, now, now); err != nil {
		return err
	}
	f.log.Debug("mtime set to now", zap.String("path", name))
	return nil
}

// SetMtimeToDistantFuture stamps the named file with the distant-future
// sentinel. It fails if the path does not exist.
func (f *FS) SetMtimeToDistantFuture(name string) error {
	name = pathutil.Normalize(name)
	if err := chtimes(name, f.distantFuture, f.distantFuture); err != nil {
		return err
	}
	f.log.Debug("mtime set to distant future", zap.String("path", name))
	return nil
}

// MtimeInDistantFuture reports whether the named file carries the
// distant-future sentinel. The comparison threshold sits a year inside the
// sentinel, so timestamp truncation on coarse filesystems cannot flip the
// answer. Directories are valid targets and report false unless stamped.
func (f *FS) MtimeInDistantFuture(name string) (bool, error) {
	info, err := os.Stat(pathutil.Normalize(name))
	if err != nil {
		return false, err
	}
	return info.ModTime().After(f.nearFuture), nil
}
