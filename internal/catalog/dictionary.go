package catalog

// FallbackCategory is assigned when no keyword matches a merchant, and is the
// only entry of the fallback dictionary.
const FallbackCategory = "其他"

// Category pairs a spending bucket name with the keywords that select it.
type Category struct {
	Name     string
	Keywords []string
}

// Dictionary is an ordered list of categories. When keyword lists overlap the
// first matching category wins, so the declared order is part of the contract
// and is never re-sorted.
type Dictionary []Category

// Fallback returns the minimal dictionary substituted when the configured one
// cannot be loaded. It has no keywords, so every merchant classifies as 其他.
func Fallback() Dictionary {
	return Dictionary{{Name: FallbackCategory}}
}
