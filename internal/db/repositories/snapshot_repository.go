package repositories

import (
	"context"
	"fmt"

	models "factionhq/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotRepository records confirmed sync applies
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Record inserts one snapshot row for an applied sync.
func (r *SnapshotRepository) Record(ctx context.Context, factionID, categoryType, categoryID, createdBy string, added, removed int) error {
	row := models.SyncSnapshot{
		ID:           uuid.NewString(),
		FactionID:    factionID,
		CategoryType: categoryType,
		CategoryID:   categoryID,
		AddedCount:   added,
		RemovedCount: removed,
		CreatedBy:    createdBy,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record sync snapshot: %w", err)
	}
	return nil
}
