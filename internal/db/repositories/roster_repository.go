package repositories

import (
	"context"
	"fmt"

	models "factionhq/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// RosterRepository manages roster views, their sections, and the classified
// section membership.
type RosterRepository struct {
	db *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// GetByID retrieves a roster with its sections ordered for classification.
func (r *RosterRepository) GetByID(ctx context.Context, factionID, rosterID string) (*models.Roster, error) {
	var roster models.Roster

	err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("faction_id = ? AND id = ?", factionID, rosterID).
		First(&roster).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	return &roster, nil
}

// GetSectionMembers retrieves the stored classification keyed by section id.
func (r *RosterRepository) GetSectionMembers(ctx context.Context, sectionIDs []string) (map[string][]int, error) {
	if len(sectionIDs) == 0 {
		return map[string][]int{}, nil
	}

	var rows []models.SectionMember
	err := r.db.WithContext(ctx).
		Where("section_id IN ?", sectionIDs).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch section members: %w", err)
	}

	out := make(map[string][]int)
	for _, row := range rows {
		out[row.SectionID] = append(out[row.SectionID], row.CharacterID)
	}
	return out, nil
}

// ReplaceSectionMembers replaces every listed section's member rows with the
// given assignment in one transaction. Sections absent from the assignment
// map are cleared: classification is a full replacement, never incremental.
func (r *RosterRepository) ReplaceSectionMembers(ctx context.Context, sectionIDs []string, assignment map[string][]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).
				Delete(&models.SectionMember{}).Error; err != nil {
				return fmt.Errorf("failed to clear section members: %w", err)
			}
		}

		var rows []models.SectionMember
		for sectionID, characterIDs := range assignment {
			for _, cid := range characterIDs {
				rows = append(rows, models.SectionMember{
					SectionID:   sectionID,
					CharacterID: cid,
				})
			}
		}

		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to insert section members: %w", err)
			}
		}

		return nil
	})
}
