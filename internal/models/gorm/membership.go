package gorm

import "time"

// Category is one internal organizational grouping (a unit or a detail).
// Secondary categories hand out non-exclusive assignments; characters may
// hold any number of those but at most one primary assignment faction-wide.
type Category struct {
	ID        string `gorm:"column:id;primaryKey;type:uuid"`
	FactionID string `gorm:"column:faction_id;type:uuid;index"`
	Type      string `gorm:"column:type"` // unit | detail
	Name      string `gorm:"column:name"`

	// ForumGroupID links the category to a forum group for sync. Nil means
	// forum sync is unavailable for this category.
	ForumGroupID *int `gorm:"column:forum_group_id"`

	Secondary bool `gorm:"column:secondary;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Category) TableName() string {
	return "categories"
}

// Membership assigns a character to a unit or detail.
//
// The primary-assignment invariant: at most one membership with
// secondary=false may exist per character across the whole faction. This is
// enforced at write time by the single-add and transfer paths, not by a
// database constraint.
type Membership struct {
	ID           string  `gorm:"column:id;primaryKey;type:uuid"`
	FactionID    string  `gorm:"column:faction_id;type:uuid;index"`
	CategoryType string  `gorm:"column:category_type"`
	CategoryID   string  `gorm:"column:category_id;type:uuid;index"`
	CharacterID  int     `gorm:"column:character_id;index"`
	Title        *string `gorm:"column:title"`
	Secondary    bool    `gorm:"column:secondary;default:false"`

	// Manual marks a human-added membership. Manual rows are never proposed
	// for automatic removal during sync.
	Manual bool `gorm:"column:manual;default:false"`

	CreatedBy string    `gorm:"column:created_by"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Membership) TableName() string {
	return "memberships"
}

// SyncSnapshot records one confirmed sync apply for audit purposes.
type SyncSnapshot struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	FactionID    string    `gorm:"column:faction_id;type:uuid;index"`
	CategoryType string    `gorm:"column:category_type"`
	CategoryID   string    `gorm:"column:category_id;type:uuid"`
	AddedCount   int       `gorm:"column:added_count"`
	RemovedCount int       `gorm:"column:removed_count"`
	CreatedBy    string    `gorm:"column:created_by"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SyncSnapshot) TableName() string {
	return "sync_snapshots"
}
