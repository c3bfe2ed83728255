// Package recipe describes regular expressions as text, so that patterns can
// live in configuration files instead of Go code.
//
// A recipe is a chain of builder calls written with the snake_case method
// names of [regexbuilder.Builder]:
//
//	start_of_input().exactly(3).digits().then("-").exactly(4).digits().end_of_input()
//
// Arguments are strings (double-quoted or backquoted), non-negative
// integers, lists written as [a, b], and nested chains, which build
// sub-builders:
//
//	either(["cat", exactly(2).of("dog")]).ahead(of_any())
//
// Recipes are collected in YAML documents:
//
//	patterns:
//	  - name: zip
//	    dialect: re2
//	    flags: i
//	    chain: start_of_input().exactly(5).digits().end_of_input()
package recipe

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/auvred/regexbuilder"
)

// Document is a set of named recipes.
type Document struct {
	Patterns []*Recipe `yaml:"patterns"`

	byName map[string]*Recipe
}

// Recipe is a named chain together with its dialect and compile flags.
type Recipe struct {
	Name string `yaml:"name"`
	// Dialect is a name accepted by [regexbuilder.ParseDialect].
	Dialect string `yaml:"dialect"`
	// Flags are flag letters accepted by [regexbuilder.ParseFlags].
	Flags string `yaml:"flags"`
	Chain string `yaml:"chain"`

	dialect regexbuilder.Dialect
	flags   regexbuilder.Flag
	chain   *Chain
}

// Load reads a YAML document and parses every recipe in it.
// Unknown keys, duplicate or empty names, unknown dialects, invalid flags and
// unparsable chains are reported as errors.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	doc.byName = make(map[string]*Recipe, len(doc.Patterns))
	for i, p := range doc.Patterns {
		if p == nil || p.Name == "" {
			return nil, fmt.Errorf("pattern %d: missing name", i)
		}
		if _, ok := doc.byName[p.Name]; ok {
			return nil, fmt.Errorf("pattern %q: duplicate name", p.Name)
		}
		if err := p.parse(); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
		}
		doc.byName[p.Name] = p
	}
	return &doc, nil
}

// LoadFile is [Load] for a file on disk. Errors are prefixed with path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Lookup returns the recipe with the given name.
func (d *Document) Lookup(name string) (*Recipe, bool) {
	r, ok := d.byName[name]
	return r, ok
}

func (r *Recipe) parse() error {
	d, ok := regexbuilder.ParseDialect(r.Dialect)
	if !ok {
		return fmt.Errorf("unknown dialect %q", r.Dialect)
	}
	flags, err := regexbuilder.ParseFlags(r.Flags)
	if err != nil {
		return err
	}
	if r.Chain == "" {
		return fmt.Errorf("missing chain")
	}
	chain, err := ParseChain(r.Chain)
	if err != nil {
		return err
	}
	r.dialect, r.flags, r.chain = d, flags, chain
	return nil
}

// Builder builds a fresh builder from the recipe. Each call returns a new
// builder, so the result can be extended without affecting the recipe.
func (r *Recipe) Builder() (*regexbuilder.Builder, error) {
	if r.chain == nil {
		if err := r.parse(); err != nil {
			return nil, err
		}
	}
	return r.chain.Build(r.dialect)
}

// Compile builds the recipe and compiles it with its flags.
func (r *Recipe) Compile() (regexbuilder.Matcher, error) {
	b, err := r.Builder()
	if err != nil {
		return nil, err
	}
	return b.RegExp(r.flags)
}
