package gorm

import (
	"factionhq/quartermaster/internal/constants"
	"time"
)

type Faction struct {
	ID     string `gorm:"column:id;primaryKey;type:uuid"`
	Name   string `gorm:"column:name"`
	GameID int    `gorm:"column:game_id;uniqueIndex"`

	// Forum endpoint configuration. Both must be set for forum-dependent
	// features (group filters, forum sync) to be available.
	ForumBaseURL *string `gorm:"column:forum_base_url"`
	ForumAPIKey  *string `gorm:"column:forum_api_key"`

	RosterSyncMinutes int `gorm:"column:roster_sync_minutes;default:15"`
	AbasSyncMinutes   int `gorm:"column:abas_sync_minutes;default:60"`

	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Rosters    []Roster   `gorm:"foreignKey:FactionID"`
	Categories []Category `gorm:"foreignKey:FactionID"`
}

func (Faction) TableName() string {
	return "factions"
}

// ForumConfigured reports whether the faction has a usable forum endpoint.
func (f *Faction) ForumConfigured() bool {
	return f.ForumBaseURL != nil && *f.ForumBaseURL != "" && f.ForumAPIKey != nil && *f.ForumAPIKey != ""
}

// EffectiveRosterMinutes returns the configured roster threshold or the default.
func (f *Faction) EffectiveRosterMinutes() int {
	if f.RosterSyncMinutes > 0 {
		return f.RosterSyncMinutes
	}
	return constants.DefaultRosterSyncMinutes
}

// EffectiveAbasMinutes returns the configured ABAS threshold or the default.
func (f *Faction) EffectiveAbasMinutes() int {
	if f.AbasSyncMinutes > 0 {
		return f.AbasSyncMinutes
	}
	return constants.DefaultAbasSyncMinutes
}
