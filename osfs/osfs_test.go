package osfs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/fstest"
	"github.com/DroidSky/bazel/osfs"
)

// TestFS_Conformance runs the shared provider conformance suite against a
// disk-backed filesystem rooted in a per-test temporary directory.
func TestFS_Conformance(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func(t *testing.T) (core.FS, string) {
		return osfs.New(), t.TempDir()
	}, fstest.LocalConfig())
}

// TestFS_Type verifies the provider reports the local filesystem type.
func TestFS_Type(t *testing.T) {
	fsys := osfs.New()
	assert.Equal(t, core.FSTypeLocal, fsys.Type())
	assert.Equal(t, "local", fsys.Type().String())
}

// TestMtime_SentinelWindow pins the sentinel math with an injected clock:
// stamping lands ten years out, and the nine-year query threshold tolerates
// coarse filesystem timestamps without producing false positives.
func TestMtime_SentinelWindow(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fsys := osfs.New(osfs.WithClock(func() time.Time { return base }))

	name := filepath.Join(t.TempDir(), "stamp.txt")
	require.NoError(t, fsys.WriteFile(name, []byte("x"), 0o644))

	require.NoError(t, fsys.SetMtimeToDistantFuture(name))

	info, err := os.Stat(name)
	require.NoError(t, err)
	wantMtime := base.Add(10 * 365 * 24 * time.Hour)
	// Whole-second truncation is the coarsest resolution in common use.
	assert.WithinDuration(t, wantMtime, info.ModTime(), time.Second)

	future, err := fsys.MtimeInDistantFuture(name)
	require.NoError(t, err)
	assert.True(t, future)

	// A timestamp well ahead of the wall clock but inside the nine-year
	// threshold must not read as the sentinel.
	eightYearsOut := base.Add(8 * 365 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(name, eightYearsOut, eightYearsOut))

	future, err = fsys.MtimeInDistantFuture(name)
	require.NoError(t, err)
	assert.False(t, future)
}

// TestMtime_SetToNowUsesClock verifies SetMtimeToNow consults the injected
// clock rather than the real one.
func TestMtime_SetToNowUsesClock(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	fsys := osfs.New(osfs.WithClock(func() time.Time { return base }))

	name := filepath.Join(t.TempDir(), "now.txt")
	require.NoError(t, fsys.WriteFile(name, []byte("x"), 0o644))
	require.NoError(t, fsys.SetMtimeToNow(name))

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.WithinDuration(t, base, info.ModTime(), time.Second)
}

// TestRenameDir_FileDestination verifies a destination occupied by a plain
// file collapses into the other-error outcome, not not-empty.
func TestRenameDir_FileDestination(t *testing.T) {
	fsys := osfs.New()
	root := t.TempDir()

	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	require.NoError(t, fsys.MkdirAll(src, 0o700))
	require.NoError(t, fsys.WriteFile(dst, []byte("in the way"), 0o644))

	outcome, err := fsys.RenameDir(src, dst)
	assert.Equal(t, core.RenameOtherError, outcome)
	assert.Error(t, err)
}

// TestWriteFile_DevNull verifies writing to the discard device reports
// success without leaving anything observable behind.
func TestWriteFile_DevNull(t *testing.T) {
	fsys := osfs.New()
	require.NoError(t, fsys.WriteFile(os.DevNull, []byte("hello"), 0o644))

	info, err := os.Stat(os.DevNull)
	require.NoError(t, err)
	assert.False(t, info.Mode().IsRegular(), "discard device must stay a device")
}

// TestReadFileN_NegativeReadsAll verifies a negative limit means unlimited.
func TestReadFileN_NegativeReadsAll(t *testing.T) {
	fsys := osfs.New()
	name := filepath.Join(t.TempDir(), "all.txt")
	require.NoError(t, fsys.WriteFile(name, []byte("everything"), 0o644))

	got, err := fsys.ReadFileN(name, -1)
	require.NoError(t, err)
	assert.Equal(t, "everything", string(got))
}

// TestWithLogger verifies operations emit debug entries on the configured
// logger.
func TestWithLogger(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	fsys := osfs.New(osfs.WithLogger(zap.New(obs)))

	name := filepath.Join(t.TempDir(), "logged.txt")
	require.NoError(t, fsys.WriteFile(name, []byte("hi"), 0o644))

	entries := logs.FilterMessage("wrote file").All()
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].ContextMap()["path"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["bytes"])
}

// TestForEachEntry_PathsAreJoined verifies callbacks receive full paths, not
// bare names.
func TestForEachEntry_PathsAreJoined(t *testing.T) {
	fsys := osfs.New()
	root := t.TempDir()
	require.NoError(t, fsys.WriteFile(filepath.Join(root, "a.txt"), []byte("x"), 0o644))

	var got []string
	require.NoError(t, fsys.ForEachEntry(root, func(path string, isDir bool) error {
		got = append(got, path)
		return nil
	}))

	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(root, "a.txt"), got[0])
}
