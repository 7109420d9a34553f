// Package scanner discovers litezip trees and parses them into content values.
//
// The scanner package is responsible for:
//   - Parsing a module directory (index.cnxml plus resources)
//   - Parsing a collection directory (collection.xml plus resources)
//   - Discovering the modules that sit next to a collection
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
