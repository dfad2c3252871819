package osfs

import (
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/pathutil"
)

// MkdirAll creates path and every missing ancestor with the given permission
// bits. It is idempotent if the full path already exists as a directory and
// fails if any component exists as a non-directory.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	path = pathutil.Normalize(path)
	if err := os.MkdirAll(path, perm); err != nil {
		return err
	}
	f.log.Debug("created directories", zap.String("path", path))
	return nil
}

// RenameDir atomically renames oldpath to newpath and classifies the result.
// A destination that exists as a non-empty directory yields RenameNotEmpty;
// every other failure cause collapses into RenameOtherError.
func (f *FS) RenameDir(oldpath, newpath string) (core.RenameOutcome, error) {
	oldpath = pathutil.Normalize(oldpath)
	newpath = pathutil.Normalize(newpath)

	err := os.Rename(oldpath, newpath)
	if err == nil {
		f.log.Debug("renamed directory",
			zap.String("from", oldpath),
			zap.String("to", newpath))
		return core.RenameSuccess, nil
	}
	if isNotEmpty(err) {
		return core.RenameNotEmpty,
			fmt.Errorf("rename %s to %s: %w", oldpath, newpath, core.ErrNotEmpty)
	}
	return core.RenameOtherError, err
}

// ForEachEntry enumerates the immediate children of dir, invoking fn once
// per entry with the entry's full path and directory flag. It never descends
// into subdirectories.
func (f *FS) ForEachEntry(dir string, fn core.EntryFunc) error {
	dir = pathutil.Normalize(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := fn(pathutil.Join(dir, entry.Name()), entry.IsDir()); err != nil {
			return err
		}
	}
	return nil
}
