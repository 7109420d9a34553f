package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/litezip/internal/files/scanner"
	"github.com/vvka-141/litezip/internal/testing/fixtures"
	"github.com/vvka-141/litezip/pkg/litezip"
)

func TestValidateLitezip_Valid(t *testing.T) {
	tree, err := scanner.NewScanner().ParseLitezip(fixtures.Dir(t, fixtures.Litezip))
	require.NoError(t, err)

	diagnostics, err := ValidateLitezip(tree)
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
}

func TestValidateLitezip_Invalid(t *testing.T) {
	root := fixtures.Dir(t, fixtures.InvalidLitezip)
	tree, err := scanner.NewScanner().ParseLitezip(root)
	require.NoError(t, err)

	diagnostics, err := ValidateLitezip(tree)
	require.NoError(t, err)

	expected := []litezip.Diagnostic{
		{
			Path:    filepath.Join(root, "collection.xml"),
			Message: `114:13 -- error: element "para" from namespace "http://cnx.rice.edu/cnxml" not allowed in this context`,
		},
		{
			Path:    filepath.Join(root, "mux"),
			Message: "mux is not a valid identifier",
		},
		{
			Path:    filepath.Join(root, "mux", "index.cnxml"),
			Message: `61:10 -- error: unknown element "foo" from namespace "http://cnx.rice.edu/cnxml"`,
		},
	}
	assert.Equal(t, expected, diagnostics)
}

func TestValidateLitezip_CollectionIdentifier(t *testing.T) {
	root := filepath.Join(t.TempDir(), "book")
	require.NoError(t, os.MkdirAll(root, 0755))
	// no content-id: the identifier falls back to the directory name
	collection := `<col:collection xmlns:col="http://cnx.rice.edu/collxml" xmlns:md="http://cnx.rice.edu/mdml">
  <col:metadata><md:title>T</md:title><md:language>en</md:language></col:metadata>
  <col:content/>
</col:collection>
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "collection.xml"), []byte(collection), 0644))

	tree, err := scanner.NewScanner().ParseLitezip(root)
	require.NoError(t, err)

	diagnostics, err := ValidateLitezip(tree)
	require.NoError(t, err)
	assert.Equal(t, []litezip.Diagnostic{{Path: root, Message: "book is not a valid identifier"}}, diagnostics)
}

func TestValidateLitezip_NoDeduplication(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "collection.xml"), []byte(fixtures.MinimalCollection("col10001")), 0644))
	module := `<document xmlns="http://cnx.rice.edu/cnxml" xmlns:md="http://cnx.rice.edu/mdml" id="m" cnxml-version="0.7">
  <title>T</title>
  <metadata><md:title>T</md:title><md:language>en</md:language></metadata>
  <content>
    <foo/>
    <foo/>
  </content>
</document>
`
	require.NoError(t, os.MkdirAll(filepath.Join(root, "m10001"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "m10001", "index.cnxml"), []byte(module), 0644))

	tree, err := scanner.NewScanner().ParseLitezip(root)
	require.NoError(t, err)

	diagnostics, err := ValidateLitezip(tree)
	require.NoError(t, err)
	require.Len(t, diagnostics, 2)
	assert.Equal(t, `5:11 -- error: unknown element "foo" from namespace "http://cnx.rice.edu/cnxml"`, diagnostics[0].Message)
	assert.Equal(t, `6:11 -- error: unknown element "foo" from namespace "http://cnx.rice.edu/cnxml"`, diagnostics[1].Message)
}

func TestValidateLitezip_MalformedAborts(t *testing.T) {
	root := fixtures.CopyTree(t, fixtures.Litezip)
	bad := filepath.Join(root, "m42303", "index.cnxml")
	require.NoError(t, os.WriteFile(bad, []byte("<document"), 0644))

	tree, err := scanner.NewScanner().ParseLitezip(root)
	require.NoError(t, err)

	diagnostics, err := ValidateLitezip(tree)
	assert.Nil(t, diagnostics)
	assert.ErrorIs(t, err, litezip.ErrMalformedXML)
	assert.Contains(t, err.Error(), bad)
}
