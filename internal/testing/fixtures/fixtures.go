// Package fixtures provides shared litezip trees for tests: on-disk fixture
// trees under testdata/ and an in-memory tree builder.
package fixtures

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vvka-141/litezip/internal/files/filesystem"
)

// Names of the on-disk fixture trees.
const (
	// Litezip is a complete, schema-valid tree (collection col11405 and seven modules).
	Litezip = "litezip"

	// InvalidLitezip holds one schema error in the collection, one invalid
	// module identifier and one schema error in that module.
	InvalidLitezip = "invalid_litezip"
)

// Dir returns the absolute path of a fixture tree under testdata/.
// Fixture trees are shared; tests that write must use CopyTree.
func Dir(t testing.TB, name string) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("fixtures: cannot locate package directory")
	}
	dir := filepath.Join(filepath.Dir(file), "testdata", name)
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("fixtures: %v", err)
	}
	return dir
}

// CopyTree copies a fixture tree into a fresh temporary directory and
// returns the path of the copy. The copy is removed when the test ends.
func CopyTree(t testing.TB, name string) string {
	t.Helper()

	src := Dir(t, name)
	dst := filepath.Join(t.TempDir(), name)

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
	if err != nil {
		t.Fatalf("fixtures: copy %s: %v", name, err)
	}
	return dst
}

// TreeBuilder provides a fluent API for building in-memory litezip trees.
//
// Example usage:
//
//	fsys := NewTreeBuilder("/book").
//	    AddCollection(MinimalCollection("col10001")).
//	    AddModule("m10001", MinimalModule("m10001"), "figure.png").
//	    Build()
type TreeBuilder struct {
	root  string
	files map[string]string // path relative to root -> content
	dirs  []string
}

// NewTreeBuilder creates a builder for a tree rooted at root.
func NewTreeBuilder(root string) *TreeBuilder {
	return &TreeBuilder{
		root:  root,
		files: make(map[string]string),
	}
}

// AddCollection adds collection.xml at the tree root.
func (b *TreeBuilder) AddCollection(content string) *TreeBuilder {
	b.files["collection.xml"] = content
	return b
}

// AddModule adds a module directory with index.cnxml and the named resources.
// Resources get placeholder content.
func (b *TreeBuilder) AddModule(id, content string, resources ...string) *TreeBuilder {
	b.files[id+"/index.cnxml"] = content
	for _, r := range resources {
		b.files[id+"/"+r] = "resource " + r
	}
	return b
}

// AddFile adds an arbitrary file at a path relative to the root.
func (b *TreeBuilder) AddFile(path, content string) *TreeBuilder {
	b.files[path] = content
	return b
}

// AddDir adds an empty directory relative to the root.
func (b *TreeBuilder) AddDir(path string) *TreeBuilder {
	b.dirs = append(b.dirs, path)
	return b
}

// Build generates the in-memory filesystem from the accumulated entries.
func (b *TreeBuilder) Build() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem(b.root)
	for _, d := range b.dirs {
		mfs.AddDir(d)
	}
	for p, content := range b.files {
		mfs.AddFile(p, content)
	}
	return mfs
}

// MinimalModule returns a small schema-valid index.cnxml for id.
func MinimalModule(id string) string {
	return `<?xml version="1.0"?>
<document xmlns="http://cnx.rice.edu/cnxml" xmlns:md="http://cnx.rice.edu/mdml" id="` + id + `" cnxml-version="0.7" module-id="` + id + `">
  <title>Minimal</title>
  <metadata mdml-version="0.5">
    <md:content-id>` + id + `</md:content-id>
    <md:title>Minimal</md:title>
    <md:version>1.1</md:version>
    <md:language>en</md:language>
  </metadata>
  <content>
    <para id="p1">Hello.</para>
  </content>
</document>
`
}

// MinimalCollection returns a small schema-valid collection.xml for id.
func MinimalCollection(id string) string {
	return `<?xml version="1.0"?>
<col:collection xmlns:col="http://cnx.rice.edu/collxml" xmlns:md="http://cnx.rice.edu/mdml">
  <col:metadata mdml-version="0.5">
    <md:content-id>` + id + `</md:content-id>
    <md:title>Minimal</md:title>
    <md:version>1.1</md:version>
    <md:language>en</md:language>
  </col:metadata>
  <col:content/>
</col:collection>
`
}
