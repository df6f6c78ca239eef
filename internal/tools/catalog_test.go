package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	c := Default()
	require.Equal(t, 20, c.Len())

	seen := make(map[string]bool)
	for _, d := range c.Tools() {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, strings.TrimSpace(d.InstructionTemplate), d.ID)
		assert.True(t, d.Category.Valid(), "%s has category %q", d.ID, d.Category)
		assert.NotEqual(t, CategoryAll, d.Category)
		assert.Contains(t, []InputShape{InputText, InputTextarea, InputCode}, d.InputShape)
	}
}

func TestToolsAndCategoriesAreStable(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Tools(), c.Tools())
	assert.Equal(t, c.Categories(), c.Categories())

	// Mutating a returned slice must not leak into the catalog.
	first := c.Tools()
	first[0].Name = "changed"
	first[0] = Descriptor{}
	assert.Equal(t, "bulk-email-checker", c.Tools()[0].ID)
	assert.Equal(t, "Bulk Email Validator", c.Tools()[0].Name)

	cats := c.Categories()
	cats[0] = CategoryDesigner
	assert.Equal(t, CategoryAll, c.Categories()[0])
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryAll,
		CategoryDeveloper,
		CategoryDesigner,
		CategoryMarketing,
		CategoryWriting,
		CategorySEO,
		CategorySocial,
	}, Default().Categories())
}

func TestGet(t *testing.T) {
	c := Default()

	d, ok := c.Get("domain-gen")
	require.True(t, ok)
	assert.Equal(t, "AI Domain Generator", d.Name)
	assert.True(t, strings.HasPrefix(d.InstructionTemplate, "Generate 15 creative"))

	_, ok = c.Get("does-not-exist")
	assert.False(t, ok)
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	valid := Descriptor{ID: "a", Category: CategoryWriting, InstructionTemplate: "T"}

	tests := []struct {
		name    string
		defs    []Descriptor
		wantErr string
	}{
		{"duplicate id", []Descriptor{valid, valid}, "duplicate tool id"},
		{"empty id", []Descriptor{{Category: CategoryWriting, InstructionTemplate: "T"}}, "empty id"},
		{"empty template", []Descriptor{{ID: "a", Category: CategoryWriting, InstructionTemplate: "  "}}, "empty instruction template"},
		{"wildcard category", []Descriptor{{ID: "a", Category: CategoryAll, InstructionTemplate: "T"}}, "invalid category"},
		{"unknown category", []Descriptor{{ID: "a", Category: "Finance", InstructionTemplate: "T"}}, "invalid category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.defs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDefaultsInputShape(t *testing.T) {
	c, err := New([]Descriptor{{ID: "a", Category: CategorySEO, InstructionTemplate: "T"}})
	require.NoError(t, err)
	d, _ := c.Get("a")
	assert.Equal(t, InputText, d.InputShape)
}

func TestFilterAllWithEmptyQueryReturnsEverything(t *testing.T) {
	all := Default().Tools()
	assert.Equal(t, all, Filter(all, CategoryAll, ""))
	assert.Equal(t, all, Filter(all, "", ""))
}

func TestFilterByCategoryAndQuery(t *testing.T) {
	all := Default().Tools()

	ids := func(ds []Descriptor) []string {
		out := make([]string, 0, len(ds))
		for _, d := range ds {
			out = append(out, d.ID)
		}
		return out
	}

	assert.Equal(t,
		[]string{"python-ide", "code-share", "json-compare", "md5-generator", "interview-prep"},
		ids(Filter(all, CategoryDeveloper, "")))

	// Matches on description, ignoring case.
	assert.Equal(t, []string{"json-compare"}, ids(Filter(all, CategoryAll, "json DATA")))

	// Matches on name, restricted by category.
	assert.Equal(t, []string{"domain-gen"}, ids(Filter(all, CategorySEO, "domain")))
	assert.Empty(t, Filter(all, CategoryDesigner, "domain"))
}

func TestFilterMatchesPredicateForAllInputs(t *testing.T) {
	all := Default().Tools()
	queries := []string{"", "a", "GEN", "python", "email", "ideas", " ", "zzz-no-match"}

	for _, cat := range Default().Categories() {
		for _, q := range queries {
			var want []Descriptor
			for _, d := range all {
				inCat := cat == CategoryAll || d.Category == cat
				lq := strings.ToLower(q)
				inQuery := q == "" ||
					strings.Contains(strings.ToLower(d.Name), lq) ||
					strings.Contains(strings.ToLower(d.Description), lq)
				if inCat && inQuery {
					want = append(want, d)
				}
			}
			got := Filter(all, cat, q)
			if len(want) == 0 {
				assert.Empty(t, got, "category=%q query=%q", cat, q)
				continue
			}
			assert.Equal(t, want, got, "category=%q query=%q", cat, q)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"", CategoryAll, false},
		{"all", CategoryAll, false},
		{"All Tools", CategoryAll, false},
		{"social", CategorySocial, false},
		{"social media", CategorySocial, false},
		{"SEO", CategorySEO, false},
		{" Developer ", CategoryDeveloper, false},
		{"finance", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	doc := `
- id: haiku
  name: Haiku Writer
  description: Turn any topic into a haiku.
  category: Writing
  input_shape: textarea
  instruction_template: Write a haiku about the topic.
  output_label: Haiku
  is_new: true
- id: slug
  name: Slug Maker
  description: Create URL slugs.
  category: SEO
  instruction_template: Produce a URL slug for the title.
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	d, ok := c.Get("haiku")
	require.True(t, ok)
	assert.Equal(t, CategoryWriting, d.Category)
	assert.Equal(t, InputTextarea, d.InputShape)
	assert.True(t, d.IsNew)

	assert.Equal(t, "slug", c.Tools()[1].ID)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("not: [a list"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("- id: x\n  category: Writing\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty instruction template")
}
