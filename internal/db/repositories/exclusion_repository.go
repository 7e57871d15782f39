package repositories

import (
	"context"
	"fmt"

	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ExclusionRepository manages per-category exclusion entries with sqlx
type ExclusionRepository struct {
	db *sqlx.DB
}

func NewExclusionRepository(db *sqlx.DB) *ExclusionRepository {
	return &ExclusionRepository{db: db}
}

// ListNames returns the character names protected from automatic addition
// for one category.
func (r *ExclusionRepository) ListNames(ctx context.Context, categoryType, categoryID string) ([]string, error) {
	var names []string

	err := r.db.SelectContext(ctx, &names, constants.ListExclusionNames, categoryType, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}

	return names, nil
}

// List returns the full exclusion entries for one category.
func (r *ExclusionRepository) List(ctx context.Context, categoryType, categoryID string) ([]entities.ExclusionEntry, error) {
	var entries []entities.ExclusionEntry

	err := r.db.SelectContext(ctx, &entries, constants.ListExclusions, categoryType, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}

	return entries, nil
}

// Add inserts an exclusion entry; duplicates are ignored.
func (r *ExclusionRepository) Add(ctx context.Context, categoryType, categoryID, characterName string) error {
	_, err := r.db.ExecContext(ctx, constants.InsertExclusion, categoryType, categoryID, characterName)
	if err != nil {
		return fmt.Errorf("failed to insert exclusion: %w", err)
	}
	return nil
}

// Delete removes an exclusion entry.
func (r *ExclusionRepository) Delete(ctx context.Context, categoryType, categoryID, characterName string) error {
	_, err := r.db.ExecContext(ctx, constants.DeleteExclusion, categoryType, categoryID, characterName)
	if err != nil {
		return fmt.Errorf("failed to delete exclusion: %w", err)
	}
	return nil
}
