// Package filesystem provides the filesystem abstraction used to discover
// litezip trees.
//
// The tree parser only needs to stat paths, list a directory and read
// files, so the provider interface is limited to those operations. This
// keeps parsing testable through an in-memory implementation while the
// production implementation delegates to the OS.
//
// Key interfaces:
//   - FileSystemProvider: Stat, ReadDir and ReadFile
//   - FileInfo: alias for fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
