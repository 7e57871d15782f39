package repositories

import (
	"context"
	"fmt"

	models "factionhq/quartermaster/internal/models/gorm"

	"gorm.io/gorm"
)

// CategoryRepository manages unit/detail rows with GORM
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Get retrieves one category scoped to a faction
func (r *CategoryRepository) Get(ctx context.Context, factionID, categoryType, categoryID string) (*models.Category, error) {
	var cat models.Category

	err := r.db.WithContext(ctx).
		Where("faction_id = ? AND type = ? AND id = ?", factionID, categoryType, categoryID).
		First(&cat).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	return &cat, nil
}
