// Package osfs provides the OS-backed implementation of the core.FS
// interface, operating directly on the local disk.
//
// It is the only provider implementing core.MtimeFS: the distant-future
// sentinel requires real filesystem timestamps. The platform-specific pieces
// (timestamp setting, rename failure classification) live in build-tagged
// files, so each target gets a single native code path with no runtime
// branching.
//
// Usage:
//
//	fsys := osfs.New()
//	err := fsys.WriteFile("out/stamp", []byte("ok"), 0o644)
//
// # Null Device
//
// ReadFile and WriteFile treat the platform's discard device (os.DevNull)
// like a regular zero-length file: writes succeed without creating anything
// observable and reads come back empty.
//
// # Thread Safety
//
// FS instances hold no per-file state and are safe for concurrent use by
// multiple goroutines, provided callers do not race on the same path;
// concurrent writers to one path are the caller's responsibility.
package osfs
