// Package catalog holds the static skill, concept and job-category reference data
// used to match job postings against profile assets.
package catalog

import "slices"

// Category is a coarse job domain used to bias skill extraction
type Category string

// Job categories in tie-break order
const (
	CategoryTeaching   Category = "teaching"
	CategoryHealthcare Category = "healthcare"
	CategoryTechnology Category = "technology"
	CategoryBusiness   Category = "business"
	CategoryResearch   Category = "research"
)

// DefaultCategory is returned when no category keyword occurs in a posting
const DefaultCategory = CategoryBusiness

// CategoryKeywords pairs a category with the keywords that signal it
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

// Tables is the raw data a Catalog is built from
type Tables struct {
	TechSkills       []string
	BusinessConcepts []string
	TeachingSkills   []string
	TeachingConcepts []string
	TeachingDenylist []string
	Categories       []CategoryKeywords
}

// Catalog is an immutable view over Tables. Build it once at startup and
// share the pointer; none of its methods mutate state, so it is safe for
// concurrent use. Returned slices are shared and must not be modified.
type Catalog struct {
	techSkills       []string
	businessConcepts []string
	teachingSkills   []string
	teachingConcepts []string
	teachingDenylist map[string]struct{}
	categories       []CategoryKeywords
}

// New copies t into a Catalog
func New(t Tables) *Catalog {
	deny := make(map[string]struct{}, len(t.TeachingDenylist))
	for _, s := range t.TeachingDenylist {
		deny[s] = struct{}{}
	}
	categories := make([]CategoryKeywords, 0, len(t.Categories))
	for _, c := range t.Categories {
		categories = append(categories, CategoryKeywords{
			Category: c.Category,
			Keywords: slices.Clone(c.Keywords),
		})
	}
	return &Catalog{
		techSkills:       slices.Clone(t.TechSkills),
		businessConcepts: slices.Clone(t.BusinessConcepts),
		teachingSkills:   slices.Clone(t.TeachingSkills),
		teachingConcepts: slices.Clone(t.TeachingConcepts),
		teachingDenylist: deny,
		categories:       categories,
	}
}

// Default returns a Catalog built from DefaultTables
func Default() *Catalog {
	return New(DefaultTables())
}

// TechSkills returns the technical skills, most specific first
func (c *Catalog) TechSkills() []string { return c.techSkills }

// BusinessConcepts returns the business and soft-skill concepts
func (c *Catalog) BusinessConcepts() []string { return c.businessConcepts }

// TeachingSkills returns skill phrases specific to teaching postings
func (c *Catalog) TeachingSkills() []string { return c.teachingSkills }

// TeachingConcepts returns the fallback concept list for teaching postings
func (c *Catalog) TeachingConcepts() []string { return c.teachingConcepts }

// Categories returns the category keyword table in tie-break order
func (c *Catalog) Categories() []CategoryKeywords { return c.categories }

// SuppressedForTeaching reports whether skill is infrastructure noise for teaching postings
func (c *Catalog) SuppressedForTeaching(skill string) bool {
	_, ok := c.teachingDenylist[skill]
	return ok
}
