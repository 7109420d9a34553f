package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives read access to a directory tree.
type FileSystemProvider interface {
	// Stat returns file information for the given path.
	// A missing path yields an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)

	// ReadDir returns the entries directly inside path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)
}
