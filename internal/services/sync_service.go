package services

import (
	"context"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/db/repositories"
	"factionhq/quartermaster/internal/logging"
	"factionhq/quartermaster/internal/metrics"
	"factionhq/quartermaster/internal/models/dtos"
	models "factionhq/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExclusionSource lists the character names protected from automatic
// addition for a category.
type ExclusionSource interface {
	ListNames(ctx context.Context, categoryType, categoryID string) ([]string, error)
}

// SyncService computes and applies reconciling changes between a category's
// internal membership and its linked forum group. It works strictly off the
// caches and never triggers its own refetch: a missing or empty cache is a
// precondition failure pointing the caller at a manual refresh.
type SyncService struct {
	membershipRepo *repositories.MembershipRepository
	categoryRepo   *repositories.CategoryRepository
	cacheRepo      *repositories.RosterCacheRepository
	forumCacheRepo *repositories.ForumCacheRepository
	snapshotRepo   *repositories.SnapshotRepository
	exclusions     ExclusionSource
	metricsReg     *metrics.MetricsRegistry
}

func NewSyncService(
	membershipRepo *repositories.MembershipRepository,
	categoryRepo *repositories.CategoryRepository,
	cacheRepo *repositories.RosterCacheRepository,
	forumCacheRepo *repositories.ForumCacheRepository,
	snapshotRepo *repositories.SnapshotRepository,
	exclusions ExclusionSource,
	metricsReg *metrics.MetricsRegistry,
) *SyncService {
	return &SyncService{
		membershipRepo: membershipRepo,
		categoryRepo:   categoryRepo,
		cacheRepo:      cacheRepo,
		forumCacheRepo: forumCacheRepo,
		snapshotRepo:   snapshotRepo,
		exclusions:     exclusions,
		metricsReg:     metricsReg,
	}
}

// PreviewSync proposes the add/remove sets for one category against its
// cached forum group. Candidates holding a primary assignment elsewhere or
// on the exclusion list are flagged, not withheld; the caller's UI
// pre-deselects them for human review.
func (s *SyncService) PreviewSync(ctx context.Context, factionID, categoryType, categoryID string) (*dtos.SyncPreviewResponse, error) {
	cat, err := s.categoryRepo.Get(ctx, factionID, categoryType, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewDomainError(constants.ErrCodeCategoryNotFound)
		}
		return nil, err
	}

	if cat.ForumGroupID == nil {
		return nil, NewDomainError(constants.ErrCodeForumNotConfigured)
	}

	forumNames, rosterByName, rosterByID, err := s.loadCaches(ctx, factionID, *cat.ForumGroupID)
	if err != nil {
		return nil, err
	}

	// Map forum usernames through the roster's name lookup; unresolvable
	// names are dropped.
	forumIDs := make(map[int]bool)
	var orderedForumIDs []int
	unresolved := 0
	for _, username := range forumNames {
		c, ok := rosterByName[common.NormalizeName(username)]
		if !ok {
			unresolved++
			continue
		}
		if !forumIDs[c.CharacterID] {
			forumIDs[c.CharacterID] = true
			orderedForumIDs = append(orderedForumIDs, c.CharacterID)
		}
	}
	if unresolved > 0 {
		logging.Debug("Forum usernames without roster characters dropped from diff",
			"category_id", categoryID, "count", unresolved)
	}

	existing, err := s.membershipRepo.GetByCategory(ctx, categoryType, categoryID)
	if err != nil {
		return nil, err
	}

	existingIDs := make(map[int]bool, len(existing))
	manualIDs := make(map[int]bool)
	for _, m := range existing {
		existingIDs[m.CharacterID] = true
		if m.Manual {
			manualIDs[m.CharacterID] = true
		}
	}

	// Primary-assignment conflicts only matter for non-secondary categories.
	conflictingIDs := make(map[int]bool)
	if !cat.Secondary {
		primaries, err := s.membershipRepo.GetPrimaryOutsideCategory(ctx, factionID, categoryType, categoryID)
		if err != nil {
			return nil, err
		}
		for _, m := range primaries {
			conflictingIDs[m.CharacterID] = true
		}
	}

	excludedNames, err := s.exclusions.ListNames(ctx, categoryType, categoryID)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool, len(excludedNames))
	for _, name := range excludedNames {
		excluded[common.NormalizeName(name)] = true
	}

	preview := &dtos.SyncPreviewResponse{
		ToAdd:    []dtos.SyncCandidate{},
		ToRemove: []dtos.SyncCandidate{},
	}

	for _, id := range orderedForumIDs {
		if existingIDs[id] {
			continue
		}
		name := rosterByID[id]
		preview.ToAdd = append(preview.ToAdd, dtos.SyncCandidate{
			CharacterID:       id,
			CharacterName:     name,
			IsAlreadyAssigned: !cat.Secondary && conflictingIDs[id],
			IsExcluded:        excluded[common.NormalizeName(name)],
		})
	}

	// Manually-added members are never proposed for automatic removal, even
	// if they have since left the forum group.
	for _, m := range existing {
		if forumIDs[m.CharacterID] || manualIDs[m.CharacterID] {
			continue
		}
		preview.ToRemove = append(preview.ToRemove, dtos.SyncCandidate{
			CharacterID:   m.CharacterID,
			CharacterName: rosterByID[m.CharacterID],
		})
	}

	return preview, nil
}

// ApplySync applies a human-confirmed subset of a preview in one atomic
// transaction. Primary-assignment conflicts are not re-validated here; the
// preview's flags are the review point for the bulk path.
func (s *SyncService) ApplySync(ctx context.Context, actor, factionID, categoryType, categoryID string, addIDs, removeIDs []int) (*dtos.SyncApplyResult, error) {
	cat, err := s.categoryRepo.Get(ctx, factionID, categoryType, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewDomainError(constants.ErrCodeCategoryNotFound)
		}
		return nil, err
	}

	adds := make([]models.Membership, 0, len(addIDs))
	for _, id := range addIDs {
		adds = append(adds, models.Membership{
			ID:           uuid.NewString(),
			FactionID:    factionID,
			CategoryType: categoryType,
			CategoryID:   categoryID,
			CharacterID:  id,
			Secondary:    cat.Secondary,
			Manual:       false,
			CreatedBy:    actor,
		})
	}

	added, removed, err := s.membershipRepo.ApplySync(ctx, adds, categoryType, categoryID, removeIDs)
	if err != nil {
		return nil, err
	}

	if err := s.snapshotRepo.Record(ctx, factionID, categoryType, categoryID, actor, added, removed); err != nil {
		// The sync itself succeeded; a failed snapshot only loses audit data.
		logging.Warn("Failed to record sync snapshot",
			"category_id", categoryID, "error", err.Error())
	}

	if s.metricsReg != nil {
		s.metricsReg.SyncMembersTotal.WithLabelValues("add").Add(float64(added))
		s.metricsReg.SyncMembersTotal.WithLabelValues("remove").Add(float64(removed))
	}

	logging.Info("Sync applied",
		"category_type", categoryType,
		"category_id", categoryID,
		"added", added,
		"removed", removed,
		"actor", actor,
	)

	return &dtos.SyncApplyResult{Added: added, Removed: removed}, nil
}

// loadCaches enforces the sync preconditions: both the forum group cache and
// the roster cache must exist and be non-empty.
func (s *SyncService) loadCaches(ctx context.Context, factionID string, groupID int) ([]string, map[string]dtos.Character, map[int]string, error) {
	forumRow, err := s.forumCacheRepo.GetGroup(ctx, factionID, groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	rosterRow, err := s.cacheRepo.GetRoster(ctx, factionID)
	if err != nil {
		return nil, nil, nil, err
	}
	if forumRow == nil || rosterRow == nil {
		return nil, nil, nil, NewDomainError(constants.ErrCodeCachePreconditionFailed)
	}

	members, err := repositories.DecodeUsernames(forumRow.Members)
	if err != nil {
		return nil, nil, nil, err
	}
	leaders, err := repositories.DecodeUsernames(forumRow.Leaders)
	if err != nil {
		return nil, nil, nil, err
	}
	forumNames := append(members, leaders...)

	characters, err := repositories.DecodeMembers(rosterRow)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(forumNames) == 0 || len(characters) == 0 {
		return nil, nil, nil, NewDomainError(constants.ErrCodeCachePreconditionFailed)
	}

	rosterByName := make(map[string]dtos.Character, len(characters))
	rosterByID := make(map[int]string, len(characters))
	for _, c := range characters {
		rosterByName[common.NormalizeName(c.CharacterName)] = c
		rosterByID[c.CharacterID] = c.CharacterName
	}

	return forumNames, rosterByName, rosterByID, nil
}
