// In file: internal/tools/catalog.go
package tools

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an immutable, ordered registry of tool descriptors.
// It is safe for concurrent use because nothing mutates it after New returns.
type Catalog struct {
	tools []Descriptor
	byID  map[string]int
}

// New validates defs and builds a catalog that keeps their order.
func New(defs []Descriptor) (*Catalog, error) {
	c := &Catalog{
		tools: make([]Descriptor, 0, len(defs)),
		byID:  make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("tool #%d has an empty id", i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", d.ID)
		}
		if strings.TrimSpace(d.InstructionTemplate) == "" {
			return nil, fmt.Errorf("tool %q has an empty instruction template", d.ID)
		}
		if !d.Category.Valid() {
			return nil, fmt.Errorf("tool %q has invalid category %q", d.ID, d.Category)
		}
		if d.InputShape == "" {
			d.InputShape = InputText
		}
		c.byID[d.ID] = len(c.tools)
		c.tools = append(c.tools, d)
	}
	return c, nil
}

// Load builds a catalog from a YAML list of descriptors.
func Load(r io.Reader) (*Catalog, error) {
	var defs []Descriptor
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog file is empty")
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(defs)
}

// Tools returns every descriptor in declaration order.
// The slice is a copy; callers may modify it freely.
func (c *Catalog) Tools() []Descriptor {
	out := make([]Descriptor, len(c.tools))
	copy(out, c.tools)
	return out
}

// Categories returns all categories in declaration order, CategoryAll first.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Get looks up a descriptor by id.
func (c *Catalog) Get(id string) (Descriptor, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return c.tools[i], true
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Filter returns the subsequence of tools in category whose name or description
// contains query, ignoring case. CategoryAll (or "") matches every category and
// an empty query matches every tool. Order is preserved.
func Filter(tools []Descriptor, category Category, query string) []Descriptor {
	q := strings.ToLower(query)
	out := make([]Descriptor, 0, len(tools))
	for _, d := range tools {
		if d.matches(category, q) {
			out = append(out, d)
		}
	}
	return out
}
