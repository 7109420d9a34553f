package schema

import (
	"encoding/xml"
	"fmt"

	"github.com/vvka-141/litezip/pkg/litezip"
)

// Violation is a single schema diagnostic with its location.
type Violation struct {
	Line    int
	Column  int
	Message string
}

// String formats the violation as "<line>:<column> -- error: <message>".
func (v Violation) String() string {
	return fmt.Sprintf("%d:%d -- error: %s", v.Line, v.Column, v.Message)
}

// MalformedError reports a document that is not well-formed XML.
// It matches litezip.ErrMalformedXML.
type MalformedError struct {
	Line    int
	Message string
}

func (e *MalformedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed XML at line %d: %s", e.Line, e.Message)
	}
	return "malformed XML: " + e.Message
}

// Is reports whether target is litezip.ErrMalformedXML.
func (e *MalformedError) Is(target error) bool {
	return target == litezip.ErrMalformedXML
}

func describe(n xml.Name) string {
	if n.Space == "" {
		return fmt.Sprintf("%q", n.Local)
	}
	return fmt.Sprintf("%q from namespace %q", n.Local, n.Space)
}

func unknownElement(n xml.Name) string {
	return "unknown element " + describe(n)
}

func elementNotAllowed(n xml.Name) string {
	return "element " + describe(n) + " not allowed in this context"
}

func missingElement(parent, child xml.Name) string {
	return fmt.Sprintf("element %q incomplete; missing required element %q", parent.Local, child.Local)
}

func missingAttribute(n xml.Name, attr string) string {
	return fmt.Sprintf("element %q missing required attribute %q", n.Local, attr)
}

func attributeNotAllowed(attr string) string {
	return fmt.Sprintf("attribute %q not allowed here", attr)
}

const textNotAllowed = "text not allowed here"
