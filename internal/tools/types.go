// In file: internal/tools/types.go

// Package tools defines the tool catalog: the fixed set of task templates a
// user can pick from. A tool is pure data. It carries the instruction that is
// sent to the model plus a few hints for whichever front end renders it; it
// has no behaviour of its own.
package tools

import (
	"fmt"
	"strings"
)

// Category groups tools for browsing. The values are the display labels.
type Category string

const (
	// CategoryAll is a filtering wildcard. It is never attached to a tool.
	CategoryAll       Category = "All Tools"
	CategoryDeveloper Category = "Developer"
	CategoryDesigner  Category = "Designer"
	CategoryMarketing Category = "Marketing"
	CategoryWriting   Category = "Writing"
	CategorySEO       Category = "SEO"
	CategorySocial    Category = "Social Media"
)

// categories lists every category in declaration order, wildcard first.
var categories = []Category{
	CategoryAll,
	CategoryDeveloper,
	CategoryDesigner,
	CategoryMarketing,
	CategoryWriting,
	CategorySEO,
	CategorySocial,
}

// categoryKeys maps the short, URL-friendly keys to categories.
var categoryKeys = map[string]Category{
	"all":       CategoryAll,
	"developer": CategoryDeveloper,
	"designer":  CategoryDesigner,
	"marketing": CategoryMarketing,
	"writing":   CategoryWriting,
	"seo":       CategorySEO,
	"social":    CategorySocial,
}

// Valid reports whether c is a category a tool may belong to.
// The wildcard is not one of them.
func (c Category) Valid() bool {
	for _, known := range categories[1:] {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a label ("Social Media") or a short key ("social"),
// ignoring case. An empty string means CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}
	if c, ok := categoryKeys[strings.ToLower(s)]; ok {
		return c, nil
	}
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// InputShape tells a front end which input widget to render.
// It has no validation semantics.
type InputShape string

const (
	InputText     InputShape = "text"
	InputTextarea InputShape = "textarea"
	InputCode     InputShape = "code"
)

// Descriptor is one catalog entry.
type Descriptor struct {
	// ID is the stable identifier used for lookups and URLs.
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	// InstructionTemplate is the task definition sent ahead of the user's input.
	InstructionTemplate string     `json:"instruction_template" yaml:"instruction_template"`
	InputShape          InputShape `json:"input_shape" yaml:"input_shape"`
	Placeholder         string     `json:"placeholder,omitempty" yaml:"placeholder"`
	OutputLabel         string     `json:"output_label,omitempty" yaml:"output_label"`
	IsNew               bool       `json:"is_new,omitempty" yaml:"is_new"`
	Featured            bool       `json:"featured,omitempty" yaml:"featured"`
}

// matches reports whether d passes the category and search filters.
// query must already be lower-cased.
func (d Descriptor) matches(category Category, query string) bool {
	if category != CategoryAll && category != "" && d.Category != category {
		return false
	}
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), query) ||
		strings.Contains(strings.ToLower(d.Description), query)
}
