package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrNotEmpty is returned (wrapped) when a rename destination exists as
	// a non-empty directory. It accompanies the RenameNotEmpty outcome.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrUnsupported is returned when an operation is not supported by the
	// provider. For example, mtime operations on in-memory providers.
	ErrUnsupported = errors.New("operation not supported")
)

// Kind categorizes an error into the taxonomy shared by all providers:
// a missing target, an OS-level permission denial, an occupied rename
// destination, or any other I/O failure.
//
// Kinds are string-based for debuggability and natural log serialization.
type Kind string

const (
	// KindNotFound indicates the target path is absent.
	KindNotFound Kind = "NOT_FOUND"

	// KindPermission indicates access was denied by the operating system.
	KindPermission Kind = "PERMISSION"

	// KindConflict indicates a rename destination is occupied and non-empty.
	KindConflict Kind = "CONFLICT"

	// KindIO indicates a transient or hardware-level OS failure, or any
	// failure that does not fit a more specific kind.
	KindIO Kind = "IO"
)

// Classify maps an error to its Kind by walking the error chain.
// A nil error has no kind; Classify returns KindIO for it only to keep the
// return total — callers should check err != nil first.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, ErrNotEmpty):
		return KindConflict
	default:
		return KindIO
	}
}
