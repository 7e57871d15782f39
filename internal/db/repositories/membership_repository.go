package repositories

import (
	"context"
	"fmt"

	models "factionhq/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// MembershipRepository manages unit/detail assignment records with GORM
type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetByID retrieves a membership by id
func (r *MembershipRepository) GetByID(ctx context.Context, id string) (*models.Membership, error) {
	var m models.Membership

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&m).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}

	return &m, nil
}

// GetByCategory retrieves all memberships for one exact (type, category)
func (r *MembershipRepository) GetByCategory(ctx context.Context, categoryType, categoryID string) ([]models.Membership, error) {
	var rows []models.Membership

	err := r.db.WithContext(ctx).
		Where("category_type = ? AND category_id = ?", categoryType, categoryID).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}

	return rows, nil
}

// GetPrimaryOutsideCategory retrieves every primary (secondary=false)
// membership in the faction excluding rows of the given category. These are
// the conflict candidates for the one-primary-assignment invariant.
func (r *MembershipRepository) GetPrimaryOutsideCategory(ctx context.Context, factionID, categoryType, categoryID string) ([]models.Membership, error) {
	var rows []models.Membership

	err := r.db.WithContext(ctx).
		Where("faction_id = ? AND secondary = ?", factionID, false).
		Not("category_type = ? AND category_id = ?", categoryType, categoryID).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch primary memberships: %w", err)
	}

	return rows, nil
}

// GetPrimariesByCharacter retrieves every primary membership one character
// holds in the faction.
func (r *MembershipRepository) GetPrimariesByCharacter(ctx context.Context, factionID string, characterID int) ([]models.Membership, error) {
	var rows []models.Membership

	err := r.db.WithContext(ctx).
		Where("faction_id = ? AND character_id = ? AND secondary = ?", factionID, characterID, false).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch primary memberships: %w", err)
	}

	return rows, nil
}

// HasPrimary reports whether the character holds any primary membership in
// the faction. Used by the single-add and transfer paths before insert.
func (r *MembershipRepository) HasPrimary(ctx context.Context, factionID string, characterID int) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("faction_id = ? AND character_id = ? AND secondary = ?", factionID, characterID, false).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to count primary memberships: %w", err)
	}

	return count > 0, nil
}

// Create inserts a new membership row
func (r *MembershipRepository) Create(ctx context.Context, m *models.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}
	return nil
}

// Update saves an existing membership row
func (r *MembershipRepository) Update(ctx context.Context, m *models.Membership) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}
	return nil
}

// Delete removes a membership row by id
func (r *MembershipRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Membership{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}

// ApplySync inserts the confirmed additions and deletes the confirmed
// removals in a single transaction. Additions that already exist are
// silently skipped; removals only touch rows still flagged manual=false, so
// a row flipped to manual between preview and apply survives.
func (r *MembershipRepository) ApplySync(ctx context.Context, adds []models.Membership, categoryType, categoryID string, removeIDs []int) (added int, removed int, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range adds {
			var count int64
			if err := tx.Model(&models.Membership{}).
				Where("category_type = ? AND category_id = ? AND character_id = ?",
					categoryType, categoryID, adds[i].CharacterID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check existing membership: %w", err)
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&adds[i]).Error; err != nil {
				return fmt.Errorf("failed to insert membership: %w", err)
			}
			added++
		}

		if len(removeIDs) > 0 {
			res := tx.Where("category_type = ? AND category_id = ? AND character_id IN ? AND manual = ?",
				categoryType, categoryID, removeIDs, false).
				Delete(&models.Membership{})
			if res.Error != nil {
				return fmt.Errorf("failed to delete memberships: %w", res.Error)
			}
			removed = int(res.RowsAffected)
		}

		return nil
	})

	if err != nil {
		return 0, 0, err
	}
	return added, removed, nil
}
