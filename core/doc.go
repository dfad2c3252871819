// Package core provides the foundational interfaces and types for a
// cross-platform file-system abstraction layer.
//
// This package defines contracts that filesystem providers must implement,
// enabling build tooling to operate against local disks and in-memory
// filesystems through a unified interface.
//
// # Design Philosophy
//
// The core package follows these principles:
//
//   - Zero dependencies: Only uses Go standard library
//   - Interface composition: Small focused interfaces compose into larger contracts
//   - Stdlib compatibility: Reuses fs.FileInfo, fs.FileMode, and io/fs sentinel errors
//   - Optional capabilities: Use type assertions for provider-specific features
//
// # Interface Hierarchy
//
// The main FS interface is composed of three sub-interfaces:
//
//   - ContentFS: Whole/partial file reads and truncating writes
//   - DirFS: Recursive creation, disambiguated rename, entry enumeration
//   - StatFS: Metadata queries and single-entry removal
//
// Optional interfaces for provider-specific capabilities:
//
//   - MtimeFS: Modification-time manipulation, including the distant-future
//     sentinel used to mark files as cache-fresh
//
// # Checking Optional Capabilities
//
//	if mfs, ok := filesystem.(core.MtimeFS); ok {
//	    err := mfs.SetMtimeToDistantFuture("stamp")
//	}
//
// # Provider Implementations
//
// This package contains only interface definitions. Concrete implementations
// are provided by separate provider packages:
//
//   - github.com/DroidSky/bazel/osfs - OS-backed local disk provider
//   - github.com/DroidSky/bazel/memfs - go-billy-backed in-memory provider
package core
