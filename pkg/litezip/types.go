// Package litezip defines the public types shared by the litezip packages:
// content values (modules and collections), parsed trees, diagnostics,
// sentinel errors and exit codes.
package litezip

import (
	"path/filepath"
	"slices"
)

// Kind distinguishes the two content variants found in a litezip tree.
type Kind int

const (
	// KindModule is a single content unit backed by index.cnxml.
	KindModule Kind = iota
	// KindCollection is the top-level container backed by collection.xml.
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// Content is the capability shared by modules and collections.
// Implementations are immutable value types.
type Content interface {
	// Kind reports which variant this content is.
	Kind() Kind

	// Identifier returns the content identifier. For a module this is the
	// directory base name; for a collection it is the declared md:content-id,
	// falling back to the directory base name when none is declared.
	Identifier() string

	// ContentFile returns the path to the XML content file.
	ContentFile() string

	// ResourceFiles returns the resource paths that accompany the content file.
	ResourceFiles() []string
}

// Module is a single content unit: one index.cnxml plus optional resources.
type Module struct {
	ID        string   `json:"id"`
	File      string   `json:"file"`
	Resources []string `json:"resources"`
}

// Collection is the top-level container of a litezip tree.
type Collection struct {
	ID        string   `json:"id"`
	File      string   `json:"file"`
	Resources []string `json:"resources"`
}

// Kind reports KindModule.
func (m Module) Kind() Kind { return KindModule }

// Identifier returns the module identifier.
func (m Module) Identifier() string { return m.ID }

// ContentFile returns the path to index.cnxml.
func (m Module) ContentFile() string { return m.File }

// ResourceFiles returns a copy of the resource paths.
func (m Module) ResourceFiles() []string { return slices.Clone(m.Resources) }

// Kind reports KindCollection.
func (c Collection) Kind() Kind { return KindCollection }

// Identifier returns the collection identifier.
func (c Collection) Identifier() string { return c.ID }

// ContentFile returns the path to collection.xml.
func (c Collection) ContentFile() string { return c.File }

// ResourceFiles returns a copy of the resource paths.
func (c Collection) ResourceFiles() []string { return slices.Clone(c.Resources) }

// Dir returns the directory that holds the module.
func (m Module) Dir() string { return filepath.Dir(m.File) }

// Dir returns the directory that holds the collection, i.e. the tree root.
func (c Collection) Dir() string { return filepath.Dir(c.File) }

// Equal reports structural equality. Resources are compared as a set.
func (m Module) Equal(other Module) bool {
	return m.ID == other.ID && m.File == other.File && sameResources(m.Resources, other.Resources)
}

// Equal reports structural equality. Resources are compared as a set.
func (c Collection) Equal(other Collection) bool {
	return c.ID == other.ID && c.File == other.File && sameResources(c.Resources, other.Resources)
}

func sameResources(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

// Tree is a parsed litezip directory: exactly one collection and the
// modules discovered next to it, in discovery order.
type Tree struct {
	Root       string     `json:"root"`
	Collection Collection `json:"collection"`
	Modules    []Module   `json:"modules"`
}

// Contents returns the collection followed by every module.
func (t Tree) Contents() []Content {
	contents := make([]Content, 0, len(t.Modules)+1)
	contents = append(contents, t.Collection)
	for _, m := range t.Modules {
		contents = append(contents, m)
	}
	return contents
}

// Module looks up a module by identifier.
func (t Tree) Module(id string) (Module, bool) {
	for _, m := range t.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Diagnostic pairs a path with a human-readable validation message.
type Diagnostic struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return d.Path + ": " + d.Message
}
