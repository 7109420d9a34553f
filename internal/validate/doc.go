// Package validate checks litezip content: identifier syntax, schema
// conformance of single content files, and whole trees.
//
// Schema violations and invalid identifiers are returned as data. Errors
// are reserved for conditions that stop validation: missing or unreadable
// files and XML that is not well-formed.
package validate
