package analyzer

import (
	"strings"

	"github.com/carson-networks/bill-analyzer/internal/catalog"
)

// Classifier maps merchant text to a category name. Categories are scanned in
// the dictionary's declared order and each category's keywords in their
// declared order; the first keyword that is a case-insensitive substring of
// the merchant wins.
type Classifier struct {
	dictionary catalog.Dictionary
}

// NewClassifier creates a Classifier over the given dictionary. An empty
// dictionary is replaced with the fallback so classification always terminates.
func NewClassifier(dictionary catalog.Dictionary) *Classifier {
	if len(dictionary) == 0 {
		dictionary = catalog.Fallback()
	}
	return &Classifier{dictionary: dictionary}
}

// Classify returns the category for a merchant, or 其他 when the merchant is
// empty or no keyword matches.
func (c *Classifier) Classify(merchant string) string {
	if merchant == "" {
		return catalog.FallbackCategory
	}

	normalized := strings.ToLower(merchant)
	for _, category := range c.dictionary {
		for _, keyword := range category.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				return category.Name
			}
		}
	}

	return catalog.FallbackCategory
}
