package fstest

import (
	"errors"
	"testing"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/pathutil"
)

// TestDirFS tests directory structure operations: MkdirAll, the tri-state
// RenameDir, and single-level enumeration.
func TestDirFS(t *testing.T, fsys core.FS, root string, config Config) {
	mustRoot(t, fsys, root)

	t.Run("MkdirAll", func(t *testing.T) {
		testDirMkdirAll(t, fsys, root)
	})
	t.Run("MkdirAllOverFile", func(t *testing.T) {
		testDirMkdirAllOverFile(t, fsys, root)
	})
	t.Run("RenameTriState", func(t *testing.T) {
		testDirRenameTriState(t, fsys, root)
	})
	t.Run("ForEachEntry", func(t *testing.T) {
		testDirForEachEntry(t, fsys, root)
	})
	t.Run("ForEachEntryStopsOnError", func(t *testing.T) {
		testDirForEachEntryStops(t, fsys, root)
	})
	t.Run("ForEachEntryMissingDir", func(t *testing.T) {
		testDirForEachEntryMissing(t, fsys, root)
	})
}

// testDirMkdirAll verifies recursive creation and idempotency.
func testDirMkdirAll(t *testing.T, fsys core.FS, root string) {
	deep := pathutil.Join(root, "a/b/c")

	if err := fsys.MkdirAll(deep, 0o700); err != nil {
		t.Fatalf("MkdirAll(%q): got error %v, want nil", deep, err)
	}

	info, err := fsys.Stat(deep)
	if err != nil {
		t.Fatalf("Stat(%q): got error %v, want nil", deep, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", deep)
	}

	// Repeating on an existing tree succeeds.
	if err := fsys.MkdirAll(deep, 0o700); err != nil {
		t.Errorf("MkdirAll(%q) repeated: got error %v, want nil", deep, err)
	}
}

// testDirMkdirAllOverFile verifies a file blocking the path fails creation.
func testDirMkdirAllOverFile(t *testing.T, fsys core.FS, root string) {
	blocker := pathutil.Join(root, "blocker")
	if err := fsys.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", blocker, err)
	}

	under := pathutil.Join(blocker, "child")
	if err := fsys.MkdirAll(under, 0o700); err == nil {
		t.Errorf("MkdirAll(%q) through a file: got nil error, want failure", under)
	}
}

// testDirRenameTriState walks the three rename outcomes in sequence, the way
// a build tool promoting an output directory would hit them.
func testDirRenameTriState(t *testing.T, fsys core.FS, root string) {
	dir1 := pathutil.Join(root, "test_rename_dir/dir1")
	dir2 := pathutil.Join(root, "test_rename_dir/dir2")
	file1 := pathutil.Join(dir1, "file1.txt")

	if err := fsys.MkdirAll(dir1, 0o700); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir1, err)
	}
	if err := fsys.WriteFile(file1, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file1, err)
	}

	// Fresh destination: success, contents move.
	outcome, err := fsys.RenameDir(dir1, dir2)
	if outcome != core.RenameSuccess || err != nil {
		t.Fatalf("RenameDir(%q, %q) = (%v, %v), want (success, nil)", dir1, dir2, outcome, err)
	}
	if ok, _ := fsys.Exists(dir1); ok {
		t.Errorf("Exists(%q) after rename = true, want false", dir1)
	}
	moved := pathutil.Join(dir2, "file1.txt")
	if ok, _ := fsys.Exists(moved); !ok {
		t.Errorf("Exists(%q) after rename = false, want true", moved)
	}

	// Repeat with the source now missing: other-error, never not-empty.
	outcome, err = fsys.RenameDir(dir1, dir2)
	if outcome != core.RenameOtherError {
		t.Errorf("RenameDir(%q, %q) repeated = %v, want other-error", dir1, dir2, outcome)
	}
	if err == nil {
		t.Errorf("RenameDir(%q, %q) repeated: got nil error, want failure", dir1, dir2)
	}

	// Occupied destination: not-empty, with the sentinel in the chain.
	if err := fsys.MkdirAll(dir1, 0o700); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir1, err)
	}
	if err := fsys.WriteFile(file1, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", file1, err)
	}
	outcome, err = fsys.RenameDir(dir2, dir1)
	if outcome != core.RenameNotEmpty {
		t.Errorf("RenameDir(%q, %q) = %v, want not-empty", dir2, dir1, outcome)
	}
	if !errors.Is(err, core.ErrNotEmpty) {
		t.Errorf("RenameDir(%q, %q): error %v does not match ErrNotEmpty", dir2, dir1, err)
	}
}

// testDirForEachEntry verifies single-level enumeration: one callback per
// immediate child, correct directory flags, no descent. Enumeration order is
// unspecified, so results are compared as a map.
func testDirForEachEntry(t *testing.T, fsys core.FS, root string) {
	rootdir := pathutil.Join(root, "foo")
	file1 := pathutil.Join(rootdir, "file1.txt")
	file2 := pathutil.Join(rootdir, "file2.txt")
	subdir := pathutil.Join(rootdir, "bar")
	file3 := pathutil.Join(subdir, "file3.txt")

	if err := fsys.MkdirAll(subdir, 0o700); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", subdir, err)
	}
	for _, f := range []string{file1, file2, file3} {
		if err := fsys.WriteFile(f, []byte("hello"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", f, err)
		}
	}

	want := map[string]bool{
		pathutil.ToSlash(file1):  false,
		pathutil.ToSlash(file2):  false,
		pathutil.ToSlash(subdir): true,
	}

	got := make(map[string]bool)
	err := fsys.ForEachEntry(rootdir, func(path string, isDir bool) error {
		key := pathutil.ToSlash(path)
		if _, seen := got[key]; seen {
			t.Errorf("ForEachEntry(%q): entry %q reported twice", rootdir, key)
		}
		got[key] = isDir
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachEntry(%q): got error %v, want nil", rootdir, err)
	}

	if len(got) != len(want) {
		t.Errorf("ForEachEntry(%q): saw %d entries, want %d: %v", rootdir, len(got), len(want), got)
	}
	for key, isDir := range want {
		gotDir, ok := got[key]
		if !ok {
			t.Errorf("ForEachEntry(%q): missing entry %q", rootdir, key)
			continue
		}
		if gotDir != isDir {
			t.Errorf("ForEachEntry(%q): entry %q isDir = %v, want %v", rootdir, key, gotDir, isDir)
		}
	}
}

// testDirForEachEntryStops verifies a callback error aborts enumeration and
// propagates unchanged.
func testDirForEachEntryStops(t *testing.T, fsys core.FS, root string) {
	dir := pathutil.Join(root, "stops")
	if err := fsys.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("MkdirAll(%q): setup failed: %v", dir, err)
	}
	for _, name := range []string{"one", "two", "three"} {
		if err := fsys.WriteFile(pathutil.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
	}

	sentinel := errors.New("stop here")
	calls := 0
	err := fsys.ForEachEntry(dir, func(path string, isDir bool) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("ForEachEntry(%q): error %v does not match the callback's", dir, err)
	}
	if calls != 1 {
		t.Errorf("ForEachEntry(%q): callback ran %d times after error, want 1", dir, calls)
	}
}

// testDirForEachEntryMissing verifies enumerating a missing directory fails.
func testDirForEachEntryMissing(t *testing.T, fsys core.FS, root string) {
	missing := pathutil.Join(root, "not-here")
	err := fsys.ForEachEntry(missing, func(string, bool) error { return nil })
	if err == nil {
		t.Fatalf("ForEachEntry(%q): got nil error, want not-exist", missing)
	}
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("ForEachEntry(%q): error %v does not match ErrNotExist", missing, err)
	}
}
