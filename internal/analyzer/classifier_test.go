package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/bill-analyzer/internal/catalog"
)

func TestClassify_FirstKeywordWins(t *testing.T) {
	classifier := NewClassifier(testDictionary())

	assert.Equal(t, "餐饮", classifier.Classify("星巴克咖啡"))
	assert.Equal(t, "购物", classifier.Classify("京东超市"))
}

func TestClassify_DictionaryOrderBreaksOverlaps(t *testing.T) {
	// Both categories list the same keyword; the earlier entry must win.
	dictionary := catalog.Dictionary{
		{Name: "先", Keywords: []string{"商户"}},
		{Name: "后", Keywords: []string{"商户"}},
	}

	assert.Equal(t, "先", NewClassifier(dictionary).Classify("某商户"))
}

func TestClassify_CaseInsensitive(t *testing.T) {
	dictionary := catalog.Dictionary{{Name: "Dining", Keywords: []string{"Starbucks"}}}
	classifier := NewClassifier(dictionary)

	assert.Equal(t, "Dining", classifier.Classify("STARBUCKS COFFEE"))
	assert.Equal(t, "Dining", classifier.Classify("starbucks reserve"))
}

func TestClassify_NoMatchFallsBack(t *testing.T) {
	classifier := NewClassifier(testDictionary())

	assert.Equal(t, catalog.FallbackCategory, classifier.Classify("不知名商户"))
}

func TestClassify_EmptyMerchantFallsBack(t *testing.T) {
	classifier := NewClassifier(testDictionary())

	assert.Equal(t, catalog.FallbackCategory, classifier.Classify(""))
}

func TestClassify_EmptyDictionaryFallsBack(t *testing.T) {
	classifier := NewClassifier(nil)

	assert.Equal(t, catalog.FallbackCategory, classifier.Classify("星巴克"))
}
