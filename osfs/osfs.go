package osfs

import (
	"io"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/DroidSky/bazel/core"
	"github.com/DroidSky/bazel/pathutil"
)

// FS is the OS-backed filesystem provider.
type FS struct {
	log *zap.Logger
	now func() time.Time

	// Timestamps bracketing the distant-future sentinel, fixed at
	// construction. Setting uses distantFuture; querying compares against
	// nearFuture so platform timestamp truncation (e.g. to whole seconds)
	// can never flip the answer.
	distantFuture time.Time
	nearFuture    time.Time
}

// Option configures filesystem creation.
type Option func(*FS)

// WithLogger attaches a structured logger; operations emit debug-level
// entries. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(f *FS) {
		f.log = log
	}
}

// WithClock overrides the wall-clock source used for mtime operations.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(f *FS) {
		f.now = now
	}
}

// New creates an OS-backed filesystem provider.
func New(opts ...Option) *FS {
	f := &FS{
		log: zap.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	// Ten years out is safely beyond any legitimate mtime; nine years gives
	// the comparison a year of slack in each direction.
	now := f.now()
	f.distantFuture = now.Add(10 * 365 * 24 * time.Hour)
	f.nearFuture = now.Add(9 * 365 * 24 * time.Hour)
	return f
}

// Type returns core.FSTypeLocal.
func (f *FS) Type() core.FSType {
	return core.FSTypeLocal
}

// ReadFile reads the named file and returns its contents.
// Non-regular files such as the null device read back empty.
func (f *FS) ReadFile(name string) ([]byte, error) {
	return f.ReadFileN(name, -1)
}

// ReadFileN reads at most max bytes from the named file. The file may be
// larger; the excess is not read and is not an error. A negative max reads
// the whole file.
func (f *FS) ReadFileN(name string, max int64) ([]byte, error) {
	name = pathutil.Normalize(name)

	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var r io.Reader = fh
	if max >= 0 {
		r = io.LimitReader(fh, max)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	f.log.Debug("read file", zap.String("path", name), zap.Int("bytes", len(data)))
	return data, nil
}

// WriteFile writes data to the named file, creating it if necessary and
// truncating any prior contents so a shorter write leaves no residual tail.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = pathutil.Normalize(name)

	fh, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	_, werr := fh.Write(data)
	cerr := fh.Close()
	if werr != nil {
		return &fs.PathError{Op: "write", Path: name, Err: werr}
	}
	if cerr != nil {
		return cerr
	}
	f.log.Debug("wrote file", zap.String("path", name), zap.Int("bytes", len(data)))
	return nil
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(pathutil.Normalize(name))
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := os.Stat(pathutil.Normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	name = pathutil.Normalize(name)
	if err := os.Remove(name); err != nil {
		return err
	}
	f.log.Debug("removed", zap.String("path", name))
	return nil
}

// Compile-time interface checks.
var (
	_ core.FS      = (*FS)(nil)
	_ core.MtimeFS = (*FS)(nil)
)
