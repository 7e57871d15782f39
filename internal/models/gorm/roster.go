package gorm

import "time"

type Roster struct {
	ID        string `gorm:"column:id;primaryKey;type:uuid"`
	FactionID string `gorm:"column:faction_id;type:uuid;index"`
	Name      string `gorm:"column:name"`

	// FilterConfig holds the user-authored JSON rule document. Malformed
	// content falls back to "no filtering applied" at read time.
	FilterConfig *string `gorm:"column:filter_config"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Sections []Section `gorm:"foreignKey:RosterID"`
}

func (Roster) TableName() string {
	return "rosters"
}

type Section struct {
	ID       string `gorm:"column:id;primaryKey;type:uuid"`
	RosterID string `gorm:"column:roster_id;type:uuid;index"`
	Name     string `gorm:"column:name"`

	// Order drives first-match-wins classification, ascending.
	Order int `gorm:"column:sort_order"`

	// Config holds the section's JSON rule document (include/exclude lists).
	Config *string `gorm:"column:config"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Section) TableName() string {
	return "roster_sections"
}

// SectionMember is one classified character in a section. Classification
// replaces a section's rows wholesale; rows are never edited in place.
type SectionMember struct {
	SectionID   string `gorm:"column:section_id;type:uuid;primaryKey"`
	CharacterID int    `gorm:"column:character_id;primaryKey"`
}

func (SectionMember) TableName() string {
	return "roster_section_members"
}
