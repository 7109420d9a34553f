// Package schema validates CNXML and CollXML documents against content-model
// rule tables.
//
// # Rule Tables
//
// A rule table is a YAML document embedded in the binary (schemas/*.yaml).
// It declares namespace prefixes, the allowed root elements, reusable element
// groups and, per element, which children and attributes are permitted:
//
//	name: cnxml
//	include: [mdml.yaml, cnxml-body.yaml]
//	namespaces:
//	  c: http://cnx.rice.edu/cnxml
//	start: [c:document]
//	elements:
//	  c:document:
//	    attributes: [id, cnxml-version]
//	    required-attributes: [id, cnxml-version]
//	    children: [c:title, c:metadata, c:content]
//	    required: [c:title, c:content]
//
// Children entries starting with "@" reference a group. An element without an
// attributes list accepts any unqualified attribute; namespaced attributes are
// always accepted. Elements in a foreign namespace (MathML) are accepted
// anywhere and their content is not inspected.
//
// # Diagnostics
//
// Validate streams the document once and reports violations in document
// order. Locations follow SAX locator semantics: a violation on a start tag
// is reported at the position just after the tag.
//
// Content models are sets, not sequences: child order and repetition are not
// constrained.
package schema
