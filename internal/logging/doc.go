// Package logging provides concrete implementations of the litezip.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes leveled messages to stderr via charmbracelet/log
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
