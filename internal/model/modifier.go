package model

// ModifierEntry is one known modifier phrase and the stat identifiers it
// resolves to. Phrase is the canonical lowercase form used as the lookup key.
type ModifierEntry struct {
	Phrase  string   `json:"phrase"`
	Targets []string `json:"targets"` // one or more trade-API stat codes or attribute tags
}

// StatCategory is a category label used by the remote stats listing
type StatCategory string

const (
	CategoryExplicit  StatCategory = "Explicit"
	CategoryImplicit  StatCategory = "Implicit"
	CategoryCrafted   StatCategory = "Crafted"
	CategoryEnchant   StatCategory = "Enchant"
	CategoryFractured StatCategory = "Fractured"
	CategoryPseudo    StatCategory = "Pseudo"
)

// DefaultCategories is the allow-list applied when importing remote stats
// unless the caller overrides it.
func DefaultCategories() []string {
	return []string{string(CategoryExplicit), string(CategoryImplicit)}
}
