package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/vvka-141/litezip/internal/checksum"
	"github.com/vvka-141/litezip/pkg/litezip"
)

// mutableFields is the update policy: record field name → MDML element.
// Every field not listed here is read-only.
var mutableFields = map[string]string{
	"id":      "content-id",
	"version": "version",
}

// MutableFields returns the names of the fields Update accepts, sorted.
func MutableFields() []string {
	names := make([]string, 0, len(mutableFields))
	for name := range mutableFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// beforeCommit runs after the temporary file is written and before the
// original is re-checked and replaced.
var beforeCommit = func(path string) {}

// edit replaces content[start:end] with prefix + escaped value + suffix.
// prefix and suffix are only set when a self-closing element is expanded.
type edit struct {
	start, end int
	field      string
	prefix     []byte
	suffix     []byte
}

// Update rewrites the mutable metadata fields of c in place.
//
// All field names are checked first: if any is not mutable the whole batch
// is rejected with an *UnsupportedFieldError and the file is not read.
// Only the text of the targeted elements changes; the rest of the file is
// preserved byte for byte. The write goes through a temporary file that is
// renamed over the original, and is refused with litezip.ErrContentChanged
// if the file changed on disk in the meantime. An empty fields map is a no-op.
func Update(c litezip.Content, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	var unsupported []string
	for name := range fields {
		if _, ok := mutableFields[name]; !ok {
			unsupported = append(unsupported, name)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return &UnsupportedFieldError{Fields: unsupported}
	}

	path := c.ContentFile()
	original, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &litezip.MissingFileError{Path: path}
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, err := rewrite(original, fields, path)
	if err != nil {
		return err
	}

	return writeAtomic(path, updated, checksum.New().CalculateRaw(original))
}

// rewrite returns a copy of content with the text of each targeted MDML
// element inside the metadata block replaced by its escaped new value.
func rewrite(content []byte, fields map[string]string, filePath string) ([]byte, error) {
	targets := make(map[string]string, len(fields)) // element local name -> field
	for field := range fields {
		targets[mutableFields[field]] = field
	}

	edits, err := locate(content, targets, filePath)
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool, len(edits))
	for _, e := range edits {
		found[e.field] = true
	}
	for _, field := range MutableFields() {
		if _, requested := fields[field]; requested && !found[field] {
			return nil, &MetadataError{
				FilePath: filePath,
				Field:    field,
				Message:  fmt.Sprintf("metadata block has no md:%s element", mutableFields[field]),
				Hint:     "Add the element to the metadata block before updating it.",
			}
		}
	}

	return splice(content, edits, fields), nil
}

// locate finds the edit for the first occurrence of every target that is a
// direct child of the first metadata element. Edits are in document order.
func locate(content []byte, targets map[string]string, filePath string) ([]edit, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))
	var edits []edit
	found := make(map[string]bool)

	depth := 0
	blockDepth := -1 // depth of the metadata element while inside it
	blockSeen := false

	for {
		begin := int(dec.InputOffset())
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err, filePath)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if !blockSeen && isMetadataElement(t.Name) {
				blockSeen = true
				blockDepth = depth
				continue
			}
			if blockDepth < 0 || depth != blockDepth+1 || t.Name.Space != litezip.NamespaceMDML {
				continue
			}
			field, ok := targets[t.Name.Local]
			if !ok || found[field] {
				continue
			}
			found[field] = true

			e, err := targetEdit(dec, content, begin)
			if err != nil {
				return nil, wrapXMLError(err, filePath)
			}
			e.field = field
			edits = append(edits, e)
			depth--

		case xml.EndElement:
			if depth == blockDepth {
				blockDepth = -1
			}
			depth--
		}
	}

	if !blockSeen {
		return nil, &MetadataError{
			FilePath: filePath,
			Message:  "document has no metadata element",
			Err:      ErrNoMetadata,
		}
	}
	return edits, nil
}

// targetEdit consumes an element whose start tag begins at offset begin and
// returns the edit that replaces its content.
func targetEdit(dec *xml.Decoder, content []byte, begin int) (edit, error) {
	afterStart := int(dec.InputOffset())

	if bytes.HasSuffix(content[begin:afterStart], []byte("/>")) {
		// the decoder reports <x/> as a start and an end element
		if _, err := dec.Token(); err != nil {
			return edit{}, err
		}
		tag := bytes.TrimRight(content[begin:afterStart-2], " \t\r\n")
		name := tag[1:]
		if i := bytes.IndexAny(name, " \t\r\n"); i >= 0 {
			name = name[:i]
		}
		return edit{
			start:  begin,
			end:    afterStart,
			prefix: append(append([]byte{}, tag...), '>'),
			suffix: append(append([]byte("</"), name...), '>'),
		}, nil
	}

	textEnd := afterStart
	for depth := 1; depth > 0; {
		textEnd = int(dec.InputOffset())
		tok, err := dec.Token()
		if err != nil {
			return edit{}, err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return edit{start: afterStart, end: textEnd}, nil
}

// splice applies edits (in document order) from the end backwards so that
// earlier offsets stay valid.
func splice(content []byte, edits []edit, fields map[string]string) []byte {
	out := append([]byte(nil), content...)
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]

		var replacement bytes.Buffer
		replacement.Write(e.prefix)
		_ = xml.EscapeText(&replacement, []byte(fields[e.field]))
		replacement.Write(e.suffix)

		tail := append(replacement.Bytes(), out[e.end:]...)
		out = append(out[:e.start], tail...)
	}
	return out
}

// writeAtomic replaces path with data through a temporary file in the same
// directory. The original permissions are kept. Before the rename the file
// on disk must still have the raw checksum expected.
func writeAtomic(path string, data []byte, expected string) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	beforeCommit(path)

	current, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to re-read %s: %w", path, err)
	}
	if checksum.New().CalculateRaw(current) != expected {
		err = fmt.Errorf("%w: %s", litezip.ErrContentChanged, path)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
