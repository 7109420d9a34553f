// Package checksum provides content file hashing with normalization support.
//
// The package implements a dual checksum strategy:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing XML comments and normalizing
//     whitespace (formatting-independent content identity)
//
// The metadata updater compares raw checksums to refuse writing over a file
// that changed on disk after it was read.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
