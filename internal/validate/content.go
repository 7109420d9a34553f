package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vvka-141/litezip/internal/schema"
	"github.com/vvka-141/litezip/pkg/litezip"
)

// ValidateContent validates the content file of c against the schema for
// its kind. It returns one "<line>:<col> -- error: <message>" string per
// violation in document order, or an empty slice when the file is valid.
// A file that is not well-formed XML yields an error matching
// litezip.ErrMalformedXML.
func ValidateContent(c litezip.Content) ([]string, error) {
	s, err := schema.ForKind(c.Kind())
	if err != nil {
		return nil, err
	}

	path := c.ContentFile()
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &litezip.MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	violations, err := s.Validate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.String())
	}
	return messages, nil
}
