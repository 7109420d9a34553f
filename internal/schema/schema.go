package schema

import (
	"embed"
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/litezip/pkg/litezip"
)

//go:embed schemas/*.yaml
var embedded embed.FS

// Embedded rule tables.
const (
	ModuleSchema     = "cnxml.yaml"
	CollectionSchema = "collxml.yaml"
)

// Schema is a compiled rule table.
type Schema struct {
	name     string
	start    map[xml.Name]bool
	elements map[xml.Name]*element
	foreign  map[string]bool
}

type element struct {
	name     xml.Name
	text     bool
	anyAttrs bool
	attrs    map[string]bool
	reqAttrs []string
	children map[xml.Name]bool
	required []xml.Name
}

// ruleFile mirrors the YAML layout of a rule table.
type ruleFile struct {
	Name       string                 `yaml:"name"`
	Include    []string               `yaml:"include"`
	Namespaces map[string]string      `yaml:"namespaces"`
	Foreign    []string               `yaml:"foreign-namespaces"`
	Start      []string               `yaml:"start"`
	Groups     map[string][]string    `yaml:"groups"`
	Elements   map[string]elementSpec `yaml:"elements"`
}

type elementSpec struct {
	Text               bool     `yaml:"text"`
	Attributes         []string `yaml:"attributes"`
	RequiredAttributes []string `yaml:"required-attributes"`
	Children           []string `yaml:"children"`
	Required           []string `yaml:"required"`
}

// childRef is either a group reference or a resolved element name.
type childRef struct {
	group string
	name  xml.Name
}

// builder accumulates rule files before group references are resolved.
type builder struct {
	name     string
	fsys     fs.FS
	loaded   map[string]bool
	start    []xml.Name
	groups   map[string][]xml.Name
	elements map[xml.Name]*element
	refs     map[xml.Name][]childRef
	foreign  map[string]bool
}

// Name returns the rule table name.
func (s *Schema) Name() string { return s.name }

// Load compiles one of the embedded rule tables.
func Load(name string) (*Schema, error) {
	sub, err := fs.Sub(embedded, "schemas")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, name)
}

// ForKind compiles the rule table that applies to the given content kind.
func ForKind(kind litezip.Kind) (*Schema, error) {
	switch kind {
	case litezip.KindModule:
		return Load(ModuleSchema)
	case litezip.KindCollection:
		return Load(CollectionSchema)
	default:
		return nil, fmt.Errorf("no schema for content kind %s", kind)
	}
}

// LoadFS compiles the rule table name from fsys, following includes
// relative to the including file.
func LoadFS(fsys fs.FS, name string) (*Schema, error) {
	b := &builder{
		fsys:     fsys,
		loaded:   make(map[string]bool),
		groups:   make(map[string][]xml.Name),
		elements: make(map[xml.Name]*element),
		refs:     make(map[xml.Name][]childRef),
		foreign:  make(map[string]bool),
	}
	if err := b.load(name, true); err != nil {
		return nil, err
	}
	return b.compile()
}

func (b *builder) load(name string, top bool) error {
	if b.loaded[name] {
		return nil
	}
	b.loaded[name] = true

	data, err := fs.ReadFile(b.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read rule table %s: %w", name, err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("failed to parse rule table %s: %w", name, err)
	}
	if top {
		b.name = rf.Name
		if b.name == "" {
			b.name = strings.TrimSuffix(path.Base(name), path.Ext(name))
		}
	}

	for _, inc := range rf.Include {
		if err := b.load(path.Join(path.Dir(name), inc), false); err != nil {
			return err
		}
	}

	resolve := func(qname string) (xml.Name, error) {
		prefix, local, ok := strings.Cut(qname, ":")
		if !ok {
			return xml.Name{}, fmt.Errorf("%s: name %q has no namespace prefix", name, qname)
		}
		ns, ok := rf.Namespaces[prefix]
		if !ok {
			return xml.Name{}, fmt.Errorf("%s: undeclared prefix %q in %q", name, prefix, qname)
		}
		return xml.Name{Space: ns, Local: local}, nil
	}

	for _, ns := range rf.Foreign {
		b.foreign[ns] = true
	}

	for _, s := range rf.Start {
		n, err := resolve(s)
		if err != nil {
			return err
		}
		b.start = append(b.start, n)
	}

	for group, members := range rf.Groups {
		if _, dup := b.groups[group]; dup {
			return fmt.Errorf("%s: group %q defined twice", name, group)
		}
		names := make([]xml.Name, 0, len(members))
		for _, m := range members {
			n, err := resolve(m)
			if err != nil {
				return err
			}
			names = append(names, n)
		}
		b.groups[group] = names
	}

	for qname, decl := range rf.Elements {
		n, err := resolve(qname)
		if err != nil {
			return err
		}
		if _, dup := b.elements[n]; dup {
			return fmt.Errorf("%s: element %q defined twice", name, qname)
		}

		el := &element{
			name:     n,
			text:     decl.Text,
			anyAttrs: decl.Attributes == nil,
			attrs:    make(map[string]bool),
			reqAttrs: decl.RequiredAttributes,
			children: make(map[xml.Name]bool),
		}
		for _, a := range decl.Attributes {
			el.attrs[a] = true
		}
		for _, a := range decl.RequiredAttributes {
			if !el.anyAttrs && !el.attrs[a] {
				return fmt.Errorf("%s: element %q requires undeclared attribute %q", name, qname, a)
			}
		}
		for _, r := range decl.Required {
			rn, err := resolve(r)
			if err != nil {
				return err
			}
			el.required = append(el.required, rn)
		}

		var refs []childRef
		for _, c := range decl.Children {
			if strings.HasPrefix(c, "@") {
				refs = append(refs, childRef{group: c[1:]})
				continue
			}
			cn, err := resolve(c)
			if err != nil {
				return err
			}
			refs = append(refs, childRef{name: cn})
		}
		b.elements[n] = el
		b.refs[n] = refs
	}

	return nil
}

func (b *builder) compile() (*Schema, error) {
	if len(b.start) == 0 {
		return nil, fmt.Errorf("rule table %s declares no start element", b.name)
	}

	var problems []string
	declared := func(n xml.Name) bool {
		_, ok := b.elements[n]
		return ok || b.foreign[n.Space]
	}

	for _, n := range b.start {
		if !declared(n) {
			problems = append(problems, fmt.Sprintf("start element %s is not declared", qualified(n)))
		}
	}

	for n, refs := range b.refs {
		el := b.elements[n]
		for _, ref := range refs {
			if ref.group == "" {
				el.children[ref.name] = true
				continue
			}
			members, ok := b.groups[ref.group]
			if !ok {
				problems = append(problems, fmt.Sprintf("element %s references unknown group %q", qualified(n), ref.group))
				continue
			}
			for _, m := range members {
				el.children[m] = true
			}
		}
		for c := range el.children {
			if !declared(c) {
				problems = append(problems, fmt.Sprintf("element %s allows undeclared child %s", qualified(n), qualified(c)))
			}
		}
		for _, r := range el.required {
			if !el.children[r] {
				problems = append(problems, fmt.Sprintf("element %s requires %s which it does not allow", qualified(n), qualified(r)))
			}
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("rule table %s is inconsistent:\n  %s", b.name, strings.Join(problems, "\n  "))
	}

	s := &Schema{
		name:     b.name,
		start:    make(map[xml.Name]bool, len(b.start)),
		elements: b.elements,
		foreign:  b.foreign,
	}
	for _, n := range b.start {
		s.start[n] = true
	}
	return s, nil
}

func qualified(n xml.Name) string {
	return "{" + n.Space + "}" + n.Local
}
