package litezip

import (
	"errors"
	"strings"
)

// Sentinel errors for the structural failure kinds.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	_, err := scanner.NewScanner().ParseModule(dir)
//	if errors.Is(err, litezip.ErrMissingFile) {
//	    // index.cnxml is absent
//	}
var (
	// ErrMissingFile indicates a required content file does not exist.
	ErrMissingFile = errors.New("missing file")

	// ErrMalformedXML indicates a content file is not well-formed XML.
	ErrMalformedXML = errors.New("malformed XML")

	// ErrUnsupportedField indicates a metadata update named a field that is not mutable.
	ErrUnsupportedField = errors.New("unsupported metadata field")

	// ErrInvalidConfig indicates litezip.yaml or the environment is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrContentChanged indicates a content file changed on disk while it was being updated.
	ErrContentChanged = errors.New("content file changed during update")
)

// MissingFileError carries the expected path of a required content file.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return "missing file: " + e.Path
}

// Is reports whether target is ErrMissingFile.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingFile):
		return ExitMissingFile
	case errors.Is(err, ErrMalformedXML):
		return ExitMalformedXML
	case errors.Is(err, ErrUnsupportedField):
		return ExitUnsupportedField
	}

	// cobra reports usage problems as plain errors
	msg := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "invalid argument", "required flag"} {
		if strings.HasPrefix(msg, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
