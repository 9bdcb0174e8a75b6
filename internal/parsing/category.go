package parsing

import (
	"strings"

	"github.com/jonathan/application-assistant/internal/catalog"
)

// Classifier infers the dominant domain of a posting from keyword hits
type Classifier struct {
	categories []catalog.CategoryKeywords
}

// NewClassifier creates a Classifier over the catalog's category table
func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{categories: cat.Categories()}
}

// Score returns how many of keywords occur in text as plain substrings.
// Each keyword counts once however often it appears.
func Score(text string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}

// Classify returns the category with the most keyword hits in text.
// Ties go to the earlier category in the table; no hits at all yields
// catalog.DefaultCategory.
func (c *Classifier) Classify(text string) catalog.Category {
	lower := strings.ToLower(text)

	best := catalog.DefaultCategory
	bestScore := 0
	for _, ck := range c.categories {
		if score := Score(lower, ck.Keywords); score > bestScore {
			best = ck.Category
			bestScore = score
		}
	}
	return best
}
