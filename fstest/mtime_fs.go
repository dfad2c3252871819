package fstest

import (
	"testing"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/pathutil"
)

// TestMtimeFS tests the distant-future mtime sentinel operations.
// Uses type assertion - skips if the provider doesn't implement core.MtimeFS.
func TestMtimeFS(t *testing.T, fsys core.FS, root string, config Config) {
	mfs, ok := fsys.(core.MtimeFS)
	if !ok {
		t.Skip("MtimeFS not supported")
		return
	}

	mustRoot(t, fsys, root)

	t.Run("DirectoryReportsFalse", func(t *testing.T) {
		future, err := mfs.MtimeInDistantFuture(root)
		if err != nil {
			t.Fatalf("MtimeInDistantFuture(%q): got error %v, want nil", root, err)
		}
		if future {
			t.Errorf("MtimeInDistantFuture(%q) = true for an unstamped directory, want false", root)
		}
	})

	t.Run("SentinelLifecycle", func(t *testing.T) {
		testMtimeSentinelLifecycle(t, fsys, mfs, root)
	})

	t.Run("MissingFile", func(t *testing.T) {
		testMtimeMissingFile(t, fsys, mfs, root)
	})
}

// testMtimeSentinelLifecycle walks the full mark/clear cycle: a fresh file is
// unmarked, stamping marks it, a content rewrite clears it, restamping marks
// it again, and SetMtimeToNow clears it again.
func testMtimeSentinelLifecycle(t *testing.T, fsys core.FS, mfs core.MtimeFS, root string) {
	name := pathutil.Join(root, "foo.txt")

	if err := fsys.WriteFile(name, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}

	assertFuture := func(step string, want bool) {
		t.Helper()
		got, err := mfs.MtimeInDistantFuture(name)
		if err != nil {
			t.Fatalf("%s: MtimeInDistantFuture(%q): got error %v, want nil", step, name, err)
		}
		if got != want {
			t.Errorf("%s: MtimeInDistantFuture(%q) = %v, want %v", step, name, got, want)
		}
	}

	// A freshly written file carries a normal mtime.
	assertFuture("fresh file", false)

	// Stamp it and confirm.
	if err := mfs.SetMtimeToDistantFuture(name); err != nil {
		t.Fatalf("SetMtimeToDistantFuture(%q): got error %v, want nil", name, err)
	}
	assertFuture("after stamp", true)

	// Overwriting the contents resets the mtime and clears the mark.
	if err := fsys.WriteFile(name, []byte("world"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
	assertFuture("after rewrite", false)

	// Stamp again so SetMtimeToNow has something to reset.
	if err := mfs.SetMtimeToDistantFuture(name); err != nil {
		t.Fatalf("SetMtimeToDistantFuture(%q): got error %v, want nil", name, err)
	}
	assertFuture("after second stamp", true)

	if err := mfs.SetMtimeToNow(name); err != nil {
		t.Fatalf("SetMtimeToNow(%q): got error %v, want nil", name, err)
	}
	assertFuture("after reset to now", false)
}

// testMtimeMissingFile verifies no mtime operation silently succeeds once
// the file is gone.
func testMtimeMissingFile(t *testing.T, fsys core.FS, mfs core.MtimeFS, root string) {
	name := pathutil.Join(root, "gone.txt")

	if err := fsys.WriteFile(name, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}
	if err := fsys.Remove(name); err != nil {
		t.Fatalf("Remove(%q): setup failed: %v", name, err)
	}

	if err := mfs.SetMtimeToNow(name); err == nil {
		t.Errorf("SetMtimeToNow(%q) on missing file: got nil error, want failure", name)
	}
	if err := mfs.SetMtimeToDistantFuture(name); err == nil {
		t.Errorf("SetMtimeToDistantFuture(%q) on missing file: got nil error, want failure", name)
	}
	if _, err := mfs.MtimeInDistantFuture(name); err == nil {
		t.Errorf("MtimeInDistantFuture(%q) on missing file: got nil error, want failure", name)
	}
}
