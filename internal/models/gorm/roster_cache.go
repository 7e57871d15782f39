package gorm

import "time"

// CachedFactionRoster is the single-row-per-faction cache of the game-world
// roster. Members is the raw JSON array of characters as returned upstream;
// the row is overwritten wholesale on refetch.
type CachedFactionRoster struct {
	FactionID string     `gorm:"column:faction_id;type:uuid;primaryKey"`
	Members   string     `gorm:"column:members"`
	LastSync  *time.Time `gorm:"column:last_sync"`
}

func (CachedFactionRoster) TableName() string {
	return "cached_faction_rosters"
}

// ActivityScore is one per-character ABAS record. One row per
// (character, faction); upserted on refetch alongside the roster.
type ActivityScore struct {
	CharacterID int        `gorm:"column:character_id;primaryKey"`
	FactionID   string     `gorm:"column:faction_id;type:uuid;primaryKey"`
	Score       string     `gorm:"column:score"`
	TotalScore  string     `gorm:"column:total_score"`
	LastSync    *time.Time `gorm:"column:last_sync"`
}

func (ActivityScore) TableName() string {
	return "activity_scores"
}

// CachedForumGroup caches one forum group's membership for a faction.
// Members and Leaders are JSON arrays of usernames.
type CachedForumGroup struct {
	FactionID string     `gorm:"column:faction_id;type:uuid;primaryKey"`
	GroupID   int        `gorm:"column:group_id;primaryKey"`
	Members   string     `gorm:"column:members"`
	Leaders   string     `gorm:"column:leaders"`
	LastSync  *time.Time `gorm:"column:last_sync"`
}

func (CachedForumGroup) TableName() string {
	return "cached_forum_groups"
}
