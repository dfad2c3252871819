// Package fstest provides a conformance test suite for validating filesystem
// provider implementations against the core.FS interface contracts.
//
// This package contains test functions that can be imported and executed by
// filesystem provider packages to verify they correctly implement the core.FS
// interface and its optional extensions (MtimeFS).
//
// The test suite validates interface contracts, not backend-specific
// behavior. Providers differ in capability — only the OS-backed provider can
// reach the platform's discard device, and only it implements mtime
// manipulation — and the tests honor those differences through Config flags
// and type assertions.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return myprovider.New(), t.TempDir()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/DroidSky/bazel/core"
)

// NewFunc returns a fresh filesystem for one test group, plus a writable
// root directory inside it. Each invocation should start clean; tests
// create and modify entries under the root.
type NewFunc func(t *testing.T) (core.FS, string)

// Config adapts the suite to provider behavior characteristics.
type Config struct {
	// HasDevNull indicates the provider can reach the platform's discard
	// device (os.DevNull). In-memory providers cannot.
	HasDevNull bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "DirFS/RenameFresh").
	SkipTests []string
}

// LocalConfig returns configuration for disk-backed providers.
func LocalConfig() Config {
	return Config{HasDevNull: true}
}

// MemoryConfig returns configuration for in-memory providers.
func MemoryConfig() Config {
	return Config{HasDevNull: false}
}

// TestSuite runs all applicable conformance tests against a filesystem.
// Uses LocalConfig() by default.
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithConfig(t, newFS, LocalConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS NewFunc, config Config) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("ContentFS", func(t *testing.T) {
		if shouldSkip("ContentFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		fsys, root := newFS(t)
		TestContentFS(t, fsys, root, config)
	})

	t.Run("StatFS", func(t *testing.T) {
		if shouldSkip("StatFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		fsys, root := newFS(t)
		TestStatFS(t, fsys, root, config)
	})

	t.Run("DirFS", func(t *testing.T) {
		if shouldSkip("DirFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		fsys, root := newFS(t)
		TestDirFS(t, fsys, root, config)
	})

	t.Run("MtimeFS", func(t *testing.T) {
		if shouldSkip("MtimeFS") {
			t.Skip("Skipped by provider configuration")
			return
		}
		fsys, root := newFS(t)
		TestMtimeFS(t, fsys, root, config)
	})
}

// mustRoot ensures the suite's scratch root exists before a group runs.
func mustRoot(t *testing.T, fsys core.FS, root string) {
	t.Helper()
	if root == "" {
		t.Fatal("provider returned an empty scratch root")
	}
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", root, err)
	}
}
