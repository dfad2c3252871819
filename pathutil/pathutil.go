// Package pathutil provides path normalization and joining utilities
// shared by the filesystem providers.
//
// Callers are allowed to pass forward slashes on every platform; providers
// normalize to the platform-native separator internally.
package pathutil

import (
	"path/filepath"
)

// Normalize cleans a path and converts it to the platform-native separator.
// It applies: FromSlash → Clean.
// Returns "." for empty paths.
func Normalize(path string) string {
	if path == "" {
		return "."
	}

	// Accept forward slashes from callers on every platform.
	path = filepath.FromSlash(path)

	// Clean the path (resolves . and .., collapses separators).
	return filepath.Clean(path)
}

// Join joins any number of path segments with the platform-native separator
// and normalizes the result. Empty segments are ignored.
func Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e == "" {
			continue
		}
		parts = append(parts, filepath.FromSlash(e))
	}
	return filepath.Join(parts...)
}

// ToSlash converts a path to forward slashes regardless of platform.
// Useful for building stable map keys in tests and logs.
func ToSlash(path string) string {
	return filepath.ToSlash(path)
}
