package fstest

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/pathutil"
)

// TestContentFS tests whole-file content operations: ReadFile, ReadFileN,
// WriteFile, including the truncate-on-rewrite and discard-device contracts.
func TestContentFS(t *testing.T, fsys core.FS, root string, config Config) {
	mustRoot(t, fsys, root)

	t.Run("WriteThenRead", func(t *testing.T) {
		testContentRoundTrip(t, fsys, root)
	})
	t.Run("RewriteShorterTruncates", func(t *testing.T) {
		testContentRewriteShorter(t, fsys, root)
	})
	t.Run("PartialRead", func(t *testing.T) {
		testContentPartialRead(t, fsys, root)
	})
	t.Run("PartialReadBeyondSize", func(t *testing.T) {
		testContentPartialReadBeyondSize(t, fsys, root)
	})
	t.Run("ReadMissing", func(t *testing.T) {
		testContentReadMissing(t, fsys, root)
	})
	t.Run("WriteEmpty", func(t *testing.T) {
		testContentWriteEmpty(t, fsys, root)
	})
	t.Run("DevNull", func(t *testing.T) {
		if !config.HasDevNull {
			t.Skip("provider cannot reach the discard device")
			return
		}
		testContentDevNull(t, fsys)
	})
}

// testContentRoundTrip verifies WriteFile followed by ReadFile yields the
// written bytes.
func testContentRoundTrip(t *testing.T, fsys core.FS, root string) {
	name := pathutil.Join(root, "test.readfile")
	want := []byte("hello world")

	if err := fsys.WriteFile(name, want, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}

	got, err := fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
	}
}

// testContentRewriteShorter verifies a shorter rewrite truncates the prior
// contents instead of merely overwriting head bytes.
func testContentRewriteShorter(t *testing.T, fsys core.FS, root string) {
	name := pathutil.Join(root, "test.writefile")

	if err := fsys.WriteFile(name, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q, hello): got error %v, want nil", name, err)
	}
	if err := fsys.WriteFile(name, []byte("hel"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q, hel): got error %v, want nil", name, err)
	}

	got, err := fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if string(got) != "hel" {
		t.Errorf("ReadFile(%q) after shorter rewrite = %q, want %q", name, got, "hel")
	}
}

// testContentPartialRead verifies ReadFileN stops at the byte limit without
// treating the remainder as an error.
func testContentPartialRead(t *testing.T, fsys core.FS, root string) {
	name := pathutil.Join(root, "test.partial")

	if err := fsys.WriteFile(name, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}

	got, err := fsys.ReadFileN(name, 5)
	if err != nil {
		t.Fatalf("ReadFileN(%q, 5): got error %v, want nil", name, err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadFileN(%q, 5) = %q, want %q", name, got, "hello")
	}
}

// testContentPartialReadBeyondSize verifies a limit larger than the file
// yields the whole file.
func testContentPartialReadBeyondSize(t *testing.T, fsys core.FS, root string) {
	name := pathutil.Join(root, "test.partial-long")
	want := []byte("short")

	if err := fsys.WriteFile(name, want, 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}

	got, err := fsys.ReadFileN(name, 4096)
	if err != nil {
		t.Fatalf("ReadFileN(%q, 4096): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadFileN(%q, 4096) = %q, want %q", name, got, want)
	}
}

// testContentReadMissing verifies reads of nonexistent paths fail with a
// not-exist error.
func testContentReadMissing(t *testing.T, fsys core.FS, root string) {
	name := pathutil.Join(root, "does-not-exist")

	_, err := fsys.ReadFile(name)
	if err == nil {
		t.Fatalf("ReadFile(%q): got nil error, want not-exist", name)
	}
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("ReadFile(%q): error %v does not match ErrNotExist", name, err)
	}
	if got := core.Classify(err); got != core.KindNotFound {
		t.Errorf("Classify(ReadFile error) = %q, want %q", got, core.KindNotFound)
	}
}

// testContentWriteEmpty verifies zero-byte writes produce readable empty files.
func testContentWriteEmpty(t *testing.T, fsys core.FS, root string) {
	name := pathutil.Join(root, "test.empty")

	if err := fsys.WriteFile(name, nil, 0o644); err != nil {
		t.Fatalf("WriteFile(%q, empty): got error %v, want nil", name, err)
	}

	got, err := fsys.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if len(got) != 0 {
		t.Errorf("ReadFile(%q) = %q, want empty", name, got)
	}
}

// testContentDevNull verifies the discard device behaves like a transparent
// zero-length file for both directions.
func testContentDevNull(t *testing.T, fsys core.FS) {
	if err := fsys.WriteFile(os.DevNull, []byte("hello"), 0o644); err != nil {
		t.Errorf("WriteFile(%q): got error %v, want nil", os.DevNull, err)
	}

	got, err := fsys.ReadFileN(os.DevNull, 42)
	if err != nil {
		t.Fatalf("ReadFileN(%q, 42): got error %v, want nil", os.DevNull, err)
	}
	if len(got) != 0 {
		t.Errorf("ReadFileN(%q, 42) = %q, want empty", os.DevNull, got)
	}
}
