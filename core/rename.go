package core

// RenameOutcome classifies the result of DirFS.RenameDir.
//
// The values are part of the public contract: they are stable, numerically
// distinct, and deliberately richer than a boolean because callers must
// distinguish "destination occupied" (recoverable by caller logic) from all
// other failures (generally fatal).
type RenameOutcome int

const (
	// RenameSuccess indicates the rename completed: the source no longer
	// exists and the destination contains its prior contents.
	RenameSuccess RenameOutcome = iota

	// RenameNotEmpty indicates the destination exists and is a non-empty
	// directory. Callers can react by merging or retrying after clearing
	// the destination.
	RenameNotEmpty

	// RenameOtherError collapses every other failure cause: missing source,
	// permission denial, cross-device move, or a destination that exists as
	// a non-directory.
	RenameOtherError
)

// String returns a string representation of the RenameOutcome.
func (o RenameOutcome) String() string {
	switch o {
	case RenameSuccess:
		return "success"
	case RenameNotEmpty:
		return "not-empty"
	case RenameOtherError:
		return "other-error"
	default:
		return "unknown"
	}
}
