package repositories

import (
	"context"
	"fmt"

	models "factionhq/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// FactionRepository manages faction rows with GORM
type FactionRepository struct {
	db *gorm.DB
}

func NewFactionRepository(db *gorm.DB) *FactionRepository {
	return &FactionRepository{db: db}
}

// GetByID retrieves a faction by its id
func (r *FactionRepository) GetByID(ctx context.Context, id string) (*models.Faction, error) {
	var faction models.Faction

	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&faction).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("faction not found")
		}
		return nil, fmt.Errorf("failed to fetch faction: %w", err)
	}

	return &faction, nil
}
