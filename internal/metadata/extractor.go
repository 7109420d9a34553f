package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/vvka-141/litezip/pkg/litezip"
)

// Role types mapped onto the record's role lists. Other role types are ignored.
const (
	RoleAuthor     = "author"
	RoleMaintainer = "maintainer"
	RoleLicensor   = "licensor"
)

// isMetadataElement reports whether name is the metadata element of a
// module (CNXML) or collection (CollXML) document.
func isMetadataElement(name xml.Name) bool {
	return name.Local == "metadata" &&
		(name.Space == litezip.NamespaceCNXML || name.Space == litezip.NamespaceCollXML)
}

// Extract parses the metadata block of a module or collection document.
//
// Algorithm:
//  1. Stream tokens until the first CNXML/CollXML metadata element
//  2. Decode its MDML children
//  3. Read the rest of the document to make sure it is well-formed
//  4. Build the record and check that every role key names a known actor
//
// Parameters:
//   - content: document content
//   - filePath: File path for error reporting (optional, can be empty)
//
// Error cases:
//   - Not well-formed XML → *MetadataError wrapping litezip.ErrMalformedXML
//   - No metadata element → *MetadataError wrapping ErrNoMetadata
//   - Role names an unknown person → *MetadataError (field "roles")
func Extract(content []byte, filePath string) (*Metadata, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	var block *metadataBlock
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err, filePath)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || block != nil || !isMetadataElement(start.Name) {
			continue
		}

		block = &metadataBlock{}
		if err := dec.DecodeElement(block, &start); err != nil {
			return nil, wrapXMLError(err, filePath)
		}
	}

	if block == nil {
		return nil, &MetadataError{
			FilePath: filePath,
			Message:  "document has no metadata element",
			Hint:     "Modules and collections carry their metadata in a <metadata> element in the CNXML or CollXML namespace.",
			Err:      ErrNoMetadata,
		}
	}

	return block.toMetadata(filePath)
}

// ExtractContent reads the content file of c and extracts its metadata.
// The file is read at call time.
func ExtractContent(c litezip.Content) (*Metadata, error) {
	path := c.ContentFile()
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &litezip.MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Extract(content, path)
}

func (b *metadataBlock) toMetadata(filePath string) (*Metadata, error) {
	meta := &Metadata{
		Repository:  strings.TrimSpace(b.Repository),
		URL:         strings.TrimSpace(b.ContentURL),
		ID:          strings.TrimSpace(b.ContentID),
		Title:       strings.TrimSpace(b.Title),
		Version:     strings.TrimSpace(b.Version),
		Created:     strings.TrimSpace(b.Created),
		Revised:     strings.TrimSpace(b.Revised),
		LicenseURL:  strings.TrimSpace(b.License.URL),
		Keywords:    trimAll(b.KeywordList.Keywords),
		Subjects:    trimAll(b.SubjectList.Subjects),
		Abstract:    collapseWhitespace(string(b.Abstract)),
		Language:    strings.TrimSpace(b.Language),
		People:      make(map[string]Person),
		Authors:     []string{},
		Maintainers: []string{},
		Licensors:   []string{},
	}

	for _, actor := range b.Actors.Actors {
		if actor.XMLName.Space != litezip.NamespaceMDML {
			continue
		}
		switch actor.XMLName.Local {
		case "person":
			meta.People[actor.UserID] = Person{
				Firstname: strings.TrimSpace(actor.Firstname),
				Surname:   strings.TrimSpace(actor.Surname),
				Fullname:  strings.TrimSpace(actor.Fullname),
				Email:     strings.TrimSpace(actor.Email),
			}
		case "organization":
			meta.People[actor.UserID] = Person{
				Fullname: strings.TrimSpace(actor.Fullname),
				Email:    strings.TrimSpace(actor.Email),
			}
		}
	}

	for _, role := range b.Roles.Roles {
		keys := strings.Fields(role.Users)
		for _, key := range keys {
			if _, ok := meta.People[key]; !ok {
				return nil, &MetadataError{
					FilePath: filePath,
					Field:    "roles",
					Message:  fmt.Sprintf("role %q names unknown person %q", role.Type, key),
					Hint:     "Every user id listed in <md:role> must have an <md:person> or <md:organization> entry in <md:actors>.",
				}
			}
		}

		switch role.Type {
		case RoleAuthor:
			meta.Authors = append(meta.Authors, keys...)
		case RoleMaintainer:
			meta.Maintainers = append(meta.Maintainers, keys...)
		case RoleLicensor:
			meta.Licensors = append(meta.Licensors, keys...)
		}
	}

	return meta, nil
}

// mixedText collects all character data of an element, descending into
// inline markup such as <emphasis>.
type mixedText string

func (t *mixedText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(tok)
		}
	}
	*t = mixedText(b.String())
	return nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

// ContentID returns the md:content-id of the metadata block, or "" when the
// block or the element is absent. Only the document up to the end of the
// metadata block is read.
func ContentID(content []byte, filePath string) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))
	depth := 0
	blockDepth := -1

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", wrapXMLError(err, filePath)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if blockDepth < 0 && isMetadataElement(t.Name) {
				blockDepth = depth
				continue
			}
			if blockDepth > 0 && depth == blockDepth+1 &&
				t.Name.Space == litezip.NamespaceMDML && t.Name.Local == "content-id" {
				var id string
				if err := dec.DecodeElement(&id, &t); err != nil {
					return "", wrapXMLError(err, filePath)
				}
				return strings.TrimSpace(id), nil
			}
		case xml.EndElement:
			if depth == blockDepth {
				return "", nil
			}
			depth--
		}
	}
}
