package schema

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

type frame struct {
	el   *element
	seen map[xml.Name]bool
}

// Validate checks the document read from r against the schema.
// Violations are returned in document order; an empty slice means the
// document is valid. A document that is not well-formed yields a
// *MalformedError and no violations.
func (s *Schema) Validate(r io.Reader) ([]Violation, error) {
	var consumed bytes.Buffer
	dec := xml.NewDecoder(io.TeeReader(r, &consumed))
	violations := []Violation{}
	var stack []*frame
	rootSeen := false

	report := func(msg string) {
		line, _ := dec.InputPos()
		col := column(consumed.Bytes(), dec.InputOffset())
		violations = append(violations, Violation{Line: line, Column: col, Message: msg})
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var parent *frame
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			} else if rootSeen {
				line, _ := dec.InputPos()
				return nil, &MalformedError{Line: line, Message: "content after the root element"}
			}
			rootSeen = true

			if s.foreign[t.Name.Space] {
				if parent != nil {
					parent.seen[t.Name] = true
				}
				if err := dec.Skip(); err != nil {
					return nil, malformed(err)
				}
				continue
			}

			el, known := s.elements[t.Name]
			if !known {
				report(unknownElement(t.Name))
				if err := dec.Skip(); err != nil {
					return nil, malformed(err)
				}
				continue
			}

			if parent == nil {
				if !s.start[t.Name] {
					report(elementNotAllowed(t.Name))
				}
			} else {
				if !parent.el.children[t.Name] {
					report(elementNotAllowed(t.Name))
				}
				parent.seen[t.Name] = true
			}

			s.checkAttributes(el, t.Attr, report)
			stack = append(stack, &frame{el: el, seen: make(map[xml.Name]bool)})

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, req := range f.el.required {
				if !f.seen[req] {
					report(missingElement(f.el.name, req))
				}
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if f := stack[len(stack)-1]; !f.el.text && len(bytes.TrimSpace(t)) > 0 {
				report(textNotAllowed)
			}
		}
	}

	if !rootSeen {
		return nil, &MalformedError{Message: "document has no root element"}
	}
	return violations, nil
}

func (s *Schema) checkAttributes(el *element, attrs []xml.Attr, report func(string)) {
	present := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		if a.Name.Space != "" {
			continue
		}
		present[a.Name.Local] = true
		if !el.anyAttrs && !el.attrs[a.Name.Local] {
			report(attributeNotAllowed(a.Name.Local))
		}
	}
	for _, req := range el.reqAttrs {
		if !present[req] {
			report(missingAttribute(el.name, req))
		}
	}
}

// column returns the 1-based character column of offset within data.
// The decoder counts columns in bytes.
func column(data []byte, offset int64) int {
	line := data[:offset]
	if i := bytes.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}
	return utf8.RuneCount(line) + 1
}

func malformed(err error) error {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return &MalformedError{Line: syn.Line, Message: syn.Msg}
	}
	return fmt.Errorf("failed to read document: %w", err)
}
