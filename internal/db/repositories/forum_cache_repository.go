package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	models "factionhq/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForumCacheRepository manages cached forum group membership, keyed by
// (faction, forum group id).
type ForumCacheRepository struct {
	db *gorm.DB
}

func NewForumCacheRepository(db *gorm.DB) *ForumCacheRepository {
	return &ForumCacheRepository{db: db}
}

// GetGroup retrieves one cached forum group row. A missing row is returned
// as (nil, nil).
func (r *ForumCacheRepository) GetGroup(ctx context.Context, factionID string, groupID int) (*models.CachedForumGroup, error) {
	var row models.CachedForumGroup

	err := r.db.WithContext(ctx).
		Where("faction_id = ? AND group_id = ?", factionID, groupID).
		First(&row).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cached forum group: %w", err)
	}

	return &row, nil
}

// DecodeUsernames unpacks a stored JSON username list.
func DecodeUsernames(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("failed to decode cached usernames: %w", err)
	}
	return names, nil
}

// UpsertGroup overwrites one forum group's cache row wholesale.
func (r *ForumCacheRepository) UpsertGroup(ctx context.Context, factionID string, groupID int, members, leaders []string, now time.Time) error {
	membersJSON, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("failed to encode members: %w", err)
	}
	leadersJSON, err := json.Marshal(leaders)
	if err != nil {
		return fmt.Errorf("failed to encode leaders: %w", err)
	}

	row := models.CachedForumGroup{
		FactionID: factionID,
		GroupID:   groupID,
		Members:   string(membersJSON),
		Leaders:   string(leadersJSON),
		LastSync:  &now,
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "faction_id"}, {Name: "group_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"members", "leaders", "last_sync"}),
		}).
		Create(&row).Error

	if err != nil {
		return fmt.Errorf("failed to upsert cached forum group: %w", err)
	}
	return nil
}
