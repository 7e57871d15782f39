package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"factionhq/quartermaster/internal/models/dtos"
	models "factionhq/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterCacheRepository manages the cached faction roster and the per-character
// activity scores. Cache rows are created on first fetch and overwritten in
// place; last-writer-wins is acceptable at this layer.
type RosterCacheRepository struct {
	db *gorm.DB
}

func NewRosterCacheRepository(db *gorm.DB) *RosterCacheRepository {
	return &RosterCacheRepository{db: db}
}

// GetRoster retrieves the cached roster row for a faction. A missing row is
// returned as (nil, nil): it just means the faction was never fetched.
func (r *RosterCacheRepository) GetRoster(ctx context.Context, factionID string) (*models.CachedFactionRoster, error) {
	var row models.CachedFactionRoster

	err := r.db.WithContext(ctx).
		Where("faction_id = ?", factionID).
		First(&row).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cached roster: %w", err)
	}

	return &row, nil
}

// DecodeMembers unpacks the stored JSON member list.
func DecodeMembers(row *models.CachedFactionRoster) ([]dtos.Character, error) {
	if row == nil || row.Members == "" {
		return nil, nil
	}
	var members []dtos.Character
	if err := json.Unmarshal([]byte(row.Members), &members); err != nil {
		return nil, fmt.Errorf("failed to decode cached members: %w", err)
	}
	return members, nil
}

// UpsertRoster overwrites the faction's roster cache row wholesale.
func (r *RosterCacheRepository) UpsertRoster(ctx context.Context, factionID string, members []dtos.Character, now time.Time) error {
	data, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("failed to encode members: %w", err)
	}

	row := models.CachedFactionRoster{
		FactionID: factionID,
		Members:   string(data),
		LastSync:  &now,
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "faction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"members", "last_sync"}),
		}).
		Create(&row).Error

	if err != nil {
		return fmt.Errorf("failed to upsert cached roster: %w", err)
	}
	return nil
}

// UpsertScores upserts every activity score row returned by a refetch.
func (r *RosterCacheRepository) UpsertScores(ctx context.Context, factionID string, records []dtos.AbasRecord, now time.Time) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]models.ActivityScore, 0, len(records))
	for _, rec := range records {
		rows = append(rows, models.ActivityScore{
			CharacterID: rec.CharacterID,
			FactionID:   factionID,
			Score:       rec.Score,
			TotalScore:  rec.TotalScore,
			LastSync:    &now,
		})
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "character_id"}, {Name: "faction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "total_score", "last_sync"}),
		}).
		Create(&rows).Error

	if err != nil {
		return fmt.Errorf("failed to upsert activity scores: %w", err)
	}
	return nil
}

// GetScores retrieves the faction's activity scores keyed by character id.
func (r *RosterCacheRepository) GetScores(ctx context.Context, factionID string) (map[int]models.ActivityScore, error) {
	var rows []models.ActivityScore

	err := r.db.WithContext(ctx).
		Where("faction_id = ?", factionID).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity scores: %w", err)
	}

	scores := make(map[int]models.ActivityScore, len(rows))
	for _, row := range rows {
		scores[row.CharacterID] = row
	}
	return scores, nil
}
