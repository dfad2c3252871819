// Package memfs provides a go-billy-backed in-memory implementation of the
// core.FS interface.
//
// It is useful for tests and sandboxed tooling that should never touch the
// real disk. The provider does not implement core.MtimeFS: billy exposes no
// way to set file times, so mtime manipulation remains the osfs provider's
// capability (callers discover this through the usual type assertion).
//
// Usage:
//
//	fsys := memfs.New()
//	err := fsys.WriteFile("scratch/out.txt", []byte("data"), 0o644)
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines as long
// as callers do not race on the same path.
package memfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	billymemfs "github.com/go-git/go-billy/v5/memfs"

	"github.com/DroidSky/bazel/core"
)

// FS wraps billy's memfs as a core.FS provider.
type FS struct {
	bfs billy.Filesystem
}

// New creates an empty in-memory filesystem provider.
func New() *FS {
	return &FS{bfs: billymemfs.New()}
}

// Unwrap returns the underlying billy.Filesystem for direct billy interop.
func (m *FS) Unwrap() billy.Filesystem {
	return m.bfs
}

// normalize converts paths to clean, forward-slash form; billy backends are
// slash-based on every platform.
func normalize(p string) string {
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
}

// Type returns core.FSTypeMemory.
func (m *FS) Type() core.FSType {
	return core.FSTypeMemory
}

// ReadFile reads the named file and returns its contents.
func (m *FS) ReadFile(name string) ([]byte, error) {
	return m.ReadFileN(name, -1)
}

// ReadFileN reads at most max bytes from the named file. A negative max
// reads the whole file.
func (m *FS) ReadFileN(name string, max int64) ([]byte, error) {
	name = normalize(name)

	f, err := m.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if max >= 0 {
		r = io.LimitReader(f, max)
	}
	return io.ReadAll(r)
}

// WriteFile writes data to the named file, creating it if necessary and
// truncating any prior contents.
func (m *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)

	f, err := m.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// Stat returns file metadata for the named file.
func (m *FS) Stat(name string) (fs.FileInfo, error) {
	return m.bfs.Stat(normalize(name))
}

// Exists reports whether the named file or directory exists.
func (m *FS) Exists(name string) (bool, error) {
	_, err := m.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove removes the named file or empty directory.
func (m *FS) Remove(name string) error {
	return m.bfs.Remove(normalize(name))
}

// MkdirAll creates path and any missing ancestors.
func (m *FS) MkdirAll(p string, perm fs.FileMode) error {
	return m.bfs.MkdirAll(normalize(p), perm)
}

// RenameDir renames oldpath to newpath and classifies the result. Billy
// backends do not surface a dedicated not-empty error, so the destination is
// inspected before the rename is attempted.
func (m *FS) RenameDir(oldpath, newpath string) (core.RenameOutcome, error) {
	oldpath = normalize(oldpath)
	newpath = normalize(newpath)

	// A missing source is an other-error regardless of destination state.
	if _, err := m.bfs.Stat(oldpath); err != nil {
		return core.RenameOtherError, err
	}

	if info, err := m.bfs.Stat(newpath); err == nil {
		if !info.IsDir() {
			return core.RenameOtherError,
				fmt.Errorf("rename %s to %s: destination is not a directory: %w",
					oldpath, newpath, core.ErrExist)
		}
		entries, err := m.bfs.ReadDir(newpath)
		if err != nil {
			return core.RenameOtherError, err
		}
		if len(entries) > 0 {
			return core.RenameNotEmpty,
				fmt.Errorf("rename %s to %s: %w", oldpath, newpath, core.ErrNotEmpty)
		}
		// POSIX rename replaces an empty destination directory.
		if err := m.bfs.Remove(newpath); err != nil {
			return core.RenameOtherError, err
		}
	}

	if err := m.bfs.Rename(oldpath, newpath); err != nil {
		return core.RenameOtherError, err
	}
	return core.RenameSuccess, nil
}

// ForEachEntry enumerates the immediate children of dir, invoking fn once
// per entry. It never descends into subdirectories.
func (m *FS) ForEachEntry(dir string, fn core.EntryFunc) error {
	dir = normalize(dir)

	// billy's memfs reports an empty listing for a missing directory;
	// surface a not-exist error instead.
	info, err := m.bfs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "readdir", Path: dir, Err: errors.New("not a directory")}
	}

	infos, err := m.bfs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, info := range infos {
		if err := fn(path.Join(dir, info.Name()), info.IsDir()); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time interface checks.
var _ core.FS = (*FS)(nil)
