package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CategoryOrder(t *testing.T) {
	c := Default()
	require.Len(t, c.Categories(), 5)

	want := []Category{CategoryTeaching, CategoryHealthcare, CategoryTechnology, CategoryBusiness, CategoryResearch}
	for i, ck := range c.Categories() {
		assert.Equal(t, want[i], ck.Category)
		assert.NotEmpty(t, ck.Keywords)
	}
}

func TestDefault_ContainsShortTokens(t *testing.T) {
	c := Default()
	for _, s := range []string{"r", "c", "go", "python", "node.js", "github actions"} {
		assert.Contains(t, c.TechSkills(), s)
	}
}

func TestSuppressedForTeaching(t *testing.T) {
	c := Default()
	assert.True(t, c.SuppressedForTeaching("docker"))
	assert.True(t, c.SuppressedForTeaching("terraform"))
	assert.False(t, c.SuppressedForTeaching("python"))
}

func TestNew_CopiesInput(t *testing.T) {
	tables := Tables{
		TechSkills: []string{"python"},
		Categories: []CategoryKeywords{{Category: CategoryTechnology, Keywords: []string{"developer"}}},
	}
	c := New(tables)

	tables.TechSkills[0] = "mutated"
	tables.Categories[0].Keywords[0] = "mutated"

	assert.Equal(t, []string{"python"}, c.TechSkills())
	assert.Equal(t, []string{"developer"}, c.Categories()[0].Keywords)
}
