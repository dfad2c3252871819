package core

import (
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the primary filesystem interface combining all core operations.
//
// All filesystem providers MUST implement this interface, which is composed
// of three sub-interfaces representing different categories of operations:
// ContentFS, DirFS, and StatFS.
type FS interface {
	ContentFS
	DirFS
	StatFS

	// Type returns the underlying filesystem type.
	// This allows callers to introspect whether the filesystem is
	// backed by a real disk or in-memory storage.
	Type() FSType
}

// ContentFS defines whole-file content operations.
// All providers MUST support this interface.
type ContentFS interface {
	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	//
	// Reading a zero-byte or non-regular file (such as the platform's
	// null device) succeeds and yields an empty result.
	// If the file does not exist, the returned error satisfies
	// errors.Is(err, ErrNotExist).
	ReadFile(name string) ([]byte, error)

	// ReadFileN reads at most max bytes from the named file.
	// The file may be larger than max; the excess is simply not read and
	// is not an error. A negative max reads the whole file.
	//
	// Non-regular files (such as the null device) yield an empty result
	// regardless of max.
	ReadFileN(name string, max int64) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	// If the file already exists, WriteFile truncates it before writing,
	// so a shorter write fully replaces longer prior contents.
	//
	// Writing to the platform's null device succeeds without creating
	// anything observable.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// DirFS defines directory structure operations.
type DirFS interface {
	// MkdirAll creates a directory named path, along with any necessary
	// parents, using the permission bits perm (before umask) for every
	// directory it creates. If path is already a directory, MkdirAll does
	// nothing and returns nil. It fails if any path component exists as a
	// non-directory.
	MkdirAll(path string, perm fs.FileMode) error

	// RenameDir atomically renames oldpath to newpath and reports the
	// outcome. The outcome is always meaningful:
	//
	//   - RenameSuccess: oldpath no longer exists and newpath contains
	//     its prior contents; the error is nil.
	//   - RenameNotEmpty: newpath exists and is a non-empty directory;
	//     the error satisfies errors.Is(err, ErrNotEmpty). Callers can
	//     use this to implement merge or retry policies.
	//   - RenameOtherError: any other failure (missing source, permission
	//     denial, cross-device move, newpath exists as a non-directory).
	RenameDir(oldpath, newpath string) (RenameOutcome, error)

	// ForEachEntry enumerates the immediate children of dir exactly once
	// each, in unspecified order, invoking fn per entry with the entry's
	// full path and whether it is a directory. It does not descend into
	// subdirectories; callers recurse manually if needed. The "." and ".."
	// entries are never reported.
	//
	// If fn returns a non-nil error, enumeration stops and ForEachEntry
	// returns that error.
	ForEachEntry(dir string, fn EntryFunc) error
}

// EntryFunc is the callback invoked by DirFS.ForEachEntry for each directory
// entry. The path is the entry's full path (dir joined with the entry name).
// The entry is ephemeral; implementations retain nothing after fn returns.
type EntryFunc func(path string, isDir bool) error

// StatFS defines metadata queries and single-entry removal.
type StatFS interface {
	// Stat returns file metadata for the named file.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error indicates the existence
	// could not be determined, not that the file doesn't exist.
	Exists(name string) (bool, error)

	// Remove removes the named file or empty directory.
	// If the path does not exist, Remove returns an error (typically
	// satisfying errors.Is(err, ErrNotExist)).
	Remove(name string) error
}

// MtimeFS defines modification-time manipulation, including the
// distant-future sentinel build systems use to mark files as cache-fresh
// without auxiliary metadata.
//
// Use type assertion to check if a filesystem supports mtime operations:
//
//	if mfs, ok := filesystem.(core.MtimeFS); ok {
//	    err := mfs.SetMtimeToDistantFuture("stamp")
//	}
//
// In-memory providers typically do not support these operations.
//
// All three operations fail if the target path does not exist, including
// after deletion; none may silently succeed on a missing file.
type MtimeFS interface {
	// SetMtimeToNow sets the named file's access and modification time to
	// the current wall-clock time.
	SetMtimeToNow(name string) error

	// SetMtimeToDistantFuture sets the named file's modification time to a
	// fixed sentinel far beyond any realistic wall-clock time, chosen to
	// never collide with a legitimate file's natural mtime.
	SetMtimeToDistantFuture(name string) error

	// MtimeInDistantFuture reports whether the named file's modification
	// time carries the distant-future sentinel, within the tolerance of
	// the platform's timestamp resolution. Querying a directory is valid
	// and reports false unless the sentinel was explicitly set.
	MtimeInDistantFuture(name string) (bool, error)
}

// Compile-time checks that EntryFunc stays assignment-compatible with the
// shape documented in DirFS.
var _ EntryFunc = func(string, bool) error { return nil }
