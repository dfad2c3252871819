package fstest

import (
	"errors"
	"testing"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/pathutil"
)

// TestStatFS tests metadata queries and single-entry removal.
func TestStatFS(t *testing.T, fsys core.FS, root string, config Config) {
	mustRoot(t, fsys, root)

	name := pathutil.Join(root, "stat.txt")
	if err := fsys.WriteFile(name, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}

	t.Run("StatFile", func(t *testing.T) {
		info, err := fsys.Stat(name)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", name, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = true, want false", name)
		}
		if info.Size() != 1 {
			t.Errorf("Stat(%q): Size() = %d, want 1", name, info.Size())
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := fsys.Stat(root)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", root, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", root)
		}
	})

	t.Run("ExistsFile", func(t *testing.T) {
		ok, err := fsys.Exists(name)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", name, err)
		}
		if !ok {
			t.Errorf("Exists(%q) = false, want true", name)
		}
	})

	t.Run("ExistsMissing", func(t *testing.T) {
		missing := pathutil.Join(root, "nope")
		ok, err := fsys.Exists(missing)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", missing, err)
		}
		if ok {
			t.Errorf("Exists(%q) = true, want false", missing)
		}
	})

	t.Run("RemoveThenGone", func(t *testing.T) {
		victim := pathutil.Join(root, "victim.txt")
		if err := fsys.WriteFile(victim, []byte("bye"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", victim, err)
		}
		if err := fsys.Remove(victim); err != nil {
			t.Fatalf("Remove(%q): got error %v, want nil", victim, err)
		}
		ok, err := fsys.Exists(victim)
		if err != nil {
			t.Fatalf("Exists(%q): got error %v, want nil", victim, err)
		}
		if ok {
			t.Errorf("Exists(%q) after Remove = true, want false", victim)
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		missing := pathutil.Join(root, "never-was")
		err := fsys.Remove(missing)
		if err == nil {
			t.Fatalf("Remove(%q): got nil error, want not-exist", missing)
		}
		if !errors.Is(err, core.ErrNotExist) {
			t.Errorf("Remove(%q): error %v does not match ErrNotExist", missing, err)
		}
	})
}
