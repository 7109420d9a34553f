package schema

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/litezip/pkg/litezip"
)

func TestLoad_EmbeddedSchemas(t *testing.T) {
	tests := []struct {
		file string
		name string
	}{
		{ModuleSchema, "cnxml"},
		{CollectionSchema, "collxml"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := Load(tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.name, s.Name())
		})
	}
}

func TestForKind(t *testing.T) {
	s, err := ForKind(litezip.KindModule)
	require.NoError(t, err)
	assert.Equal(t, "cnxml", s.Name())

	s, err = ForKind(litezip.KindCollection)
	require.NoError(t, err)
	assert.Equal(t, "collxml", s.Name())

	_, err = ForKind(litezip.Kind(42))
	assert.Error(t, err)
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

const baseRules = `name: base
namespaces:
  t: urn:test
elements:
  t:item:
    text: true
`

func TestLoadFS_Include(t *testing.T) {
	fsys := fstest.MapFS{
		"rules/base.yaml": {Data: []byte(baseRules)},
		"rules/top.yaml": {Data: []byte(`include: [base.yaml]
namespaces:
  t: urn:test
start: [t:list]
groups:
  entries: [t:item]
elements:
  t:list:
    children: ["@entries"]
    required: [t:item]
`)},
	}

	s, err := LoadFS(fsys, "rules/top.yaml")
	require.NoError(t, err)
	assert.Equal(t, "top", s.Name())

	violations, err := s.Validate(stringReader(`<list xmlns="urn:test"><item>a</item></list>`))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestLoadFS_Inconsistent(t *testing.T) {
	tests := []struct {
		name    string
		rules   string
		wantErr string
	}{
		{
			name: "undeclared child",
			rules: `namespaces: {t: "urn:test"}
start: [t:root]
elements:
  t:root: {children: [t:missing]}
`,
			wantErr: "allows undeclared child {urn:test}missing",
		},
		{
			name: "unknown group",
			rules: `namespaces: {t: "urn:test"}
start: [t:root]
elements:
  t:root: {children: ["@nothing"]}
`,
			wantErr: `references unknown group "nothing"`,
		},
		{
			name: "required but not allowed",
			rules: `namespaces: {t: "urn:test"}
start: [t:root]
elements:
  t:root: {required: [t:leaf]}
  t:leaf: {text: true}
`,
			wantErr: "requires {urn:test}leaf which it does not allow",
		},
		{
			name: "undeclared start",
			rules: `namespaces: {t: "urn:test"}
start: [t:root]
elements:
  t:leaf: {text: true}
`,
			wantErr: "start element {urn:test}root is not declared",
		},
		{
			name: "no start",
			rules: `namespaces: {t: "urn:test"}
elements:
  t:leaf: {text: true}
`,
			wantErr: "declares no start element",
		},
		{
			name: "undeclared prefix",
			rules: `start: [x:root]
`,
			wantErr: `undeclared prefix "x"`,
		},
		{
			name: "unprefixed name",
			rules: `start: [root]
`,
			wantErr: `has no namespace prefix`,
		},
		{
			name: "required attribute not declared",
			rules: `namespaces: {t: "urn:test"}
start: [t:root]
elements:
  t:root: {attributes: [a], required-attributes: [b]}
`,
			wantErr: `requires undeclared attribute "b"`,
		},
		{
			name:    "bad yaml",
			rules:   "elements: [",
			wantErr: "failed to parse rule table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"r.yaml": {Data: []byte(tt.rules)}}
			_, err := LoadFS(fsys, "r.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFS_DuplicateElement(t *testing.T) {
	fsys := fstest.MapFS{
		"base.yaml": {Data: []byte(baseRules)},
		"top.yaml": {Data: []byte(`include: [base.yaml]
namespaces: {t: "urn:test"}
start: [t:item]
elements:
  t:item: {text: true}
`)},
	}

	_, err := LoadFS(fsys, "top.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `element "t:item" defined twice`)
}
