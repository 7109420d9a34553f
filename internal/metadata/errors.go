package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/litezip/pkg/litezip"
)

// ErrNoMetadata is returned when a content file has no metadata element.
var ErrNoMetadata = errors.New("no metadata block found")

// MetadataError represents a structured error with context and helpful hints.
// It includes file path, optional line/column numbers, and actionable suggestions.
type MetadataError struct {
	FilePath string // Path to the file with the error
	Line     int    // Line number (0 if unknown)
	Column   int    // Column number (0 if unknown)
	Field    string // Field name (e.g., "id", "roles") if applicable
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
	Err      error  // Underlying cause, if any
}

// Error implements the error interface with rich formatting.
func (e *MetadataError) Error() string {
	var location string
	if e.Line > 0 {
		if e.Column > 0 {
			location = fmt.Sprintf("%s (line %d, col %d)", e.FilePath, e.Line, e.Column)
		} else {
			location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
		}
	} else {
		location = e.FilePath
	}

	msg := fmt.Sprintf("metadata error in %s: %s", location, e.Message)

	if e.Field != "" {
		msg = fmt.Sprintf("metadata error in %s [field: %s]: %s", location, e.Field, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *MetadataError) Unwrap() error {
	return e.Err
}

// UnsupportedFieldError lists the field names an update rejected.
type UnsupportedFieldError struct {
	Fields []string
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("%s: %s (mutable fields: %s)",
		litezip.ErrUnsupportedField, strings.Join(e.Fields, ", "), strings.Join(MutableFields(), ", "))
}

// Is reports whether target is litezip.ErrUnsupportedField.
func (e *UnsupportedFieldError) Is(target error) bool {
	return target == litezip.ErrUnsupportedField
}

// wrapXMLError converts xml package errors to MetadataError with line numbers.
func wrapXMLError(err error, filePath string) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &MetadataError{
			FilePath: filePath,
			Line:     syntaxErr.Line,
			Message:  syntaxErr.Msg,
			Hint:     "Check that all XML tags are properly closed and attributes are quoted.",
			Err:      litezip.ErrMalformedXML,
		}
	}

	return &MetadataError{
		FilePath: filePath,
		Message:  err.Error(),
		Err:      err,
	}
}
