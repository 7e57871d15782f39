package entities

// ExclusionEntry protects a character name from automatic addition during
// sync for one category, independent of membership state.
type ExclusionEntry struct {
	CategoryType  string `db:"category_type" json:"category_type"`
	CategoryID    string `db:"category_id" json:"category_id"`
	CharacterName string `db:"character_name" json:"character_name"`
}
