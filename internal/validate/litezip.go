package validate

import (
	"github.com/vvka-141/litezip/pkg/litezip"
)

// ValidateLitezip validates a whole tree.
//
// Order of diagnostics:
//  1. Collection identifier (path: collection directory)
//  2. Collection schema violations (path: collection.xml)
//  3. For each module in tree order, its identifier (path: module
//     directory) followed by its schema violations (path: index.cnxml)
//
// Every problem is reported; nothing is deduplicated. Missing files and
// malformed XML abort validation with an error naming the file.
func ValidateLitezip(tree litezip.Tree) ([]litezip.Diagnostic, error) {
	diagnostics := []litezip.Diagnostic{}

	collect := func(c litezip.Content, dir string) error {
		if !IsValidIdentifier(c.Identifier()) {
			diagnostics = append(diagnostics, litezip.Diagnostic{
				Path:    dir,
				Message: invalidIdentifier(c.Identifier()),
			})
		}

		messages, err := ValidateContent(c)
		if err != nil {
			return err
		}
		for _, msg := range messages {
			diagnostics = append(diagnostics, litezip.Diagnostic{
				Path:    c.ContentFile(),
				Message: msg,
			})
		}
		return nil
	}

	if err := collect(tree.Collection, tree.Collection.Dir()); err != nil {
		return nil, err
	}
	for _, m := range tree.Modules {
		if err := collect(m, m.Dir()); err != nil {
			return nil, err
		}
	}
	return diagnostics, nil
}
