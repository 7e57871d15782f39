package services

import (
	"context"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/logging"
	"factionhq/quartermaster/internal/models/dtos"
	"factionhq/quartermaster/internal/models/entities"
	"factionhq/quartermaster/internal/providers"
)

// ExclusionStore is the repository surface the exclusion service needs.
type ExclusionStore interface {
	List(ctx context.Context, categoryType, categoryID string) ([]entities.ExclusionEntry, error)
	Add(ctx context.Context, categoryType, categoryID, characterName string) error
	Delete(ctx context.Context, categoryType, categoryID, characterName string) error
}

// ForumUserLookup is the single forum call the exclusion service needs for
// canonicalizing typed names.
type ForumUserLookup interface {
	GetUserByUsername(ctx context.Context, ep providers.ForumEndpoint, name string) (*dtos.ForumUserResponse, int, error)
}

// ExclusionService manages per-category exclusion lists. Names arrive typed
// by managers, so on add the service resolves the name against the forum and
// stores the forum's canonical username form when it can. A failed lookup is
// never fatal: the typed name is kept as-is and matching stays tolerant of
// the underscore/space split.
type ExclusionService struct {
	store      ExclusionStore
	factionCfg *common.FactionConfigService
	forumAPI   ForumUserLookup
}

func NewExclusionService(store ExclusionStore, factionCfg *common.FactionConfigService, forumAPI ForumUserLookup) *ExclusionService {
	return &ExclusionService{
		store:      store,
		factionCfg: factionCfg,
		forumAPI:   forumAPI,
	}
}

// List returns the exclusion entries for one category.
func (s *ExclusionService) List(ctx context.Context, categoryType, categoryID string) ([]entities.ExclusionEntry, error) {
	return s.store.List(ctx, categoryType, categoryID)
}

// Add records one excluded name, canonicalized against the faction's forum
// when one is configured.
func (s *ExclusionService) Add(ctx context.Context, factionID, categoryType, categoryID, characterName string) error {
	name := s.canonicalize(ctx, factionID, characterName)
	return s.store.Add(ctx, categoryType, categoryID, name)
}

// Delete removes one excluded name.
func (s *ExclusionService) Delete(ctx context.Context, categoryType, categoryID, characterName string) error {
	return s.store.Delete(ctx, categoryType, categoryID, characterName)
}

// canonicalize asks the forum for the username matching the typed name and
// returns the forum's spelling; on any failure the typed name comes back
// unchanged.
func (s *ExclusionService) canonicalize(ctx context.Context, factionID, characterName string) string {
	faction, err := s.factionCfg.GetFaction(ctx, factionID)
	if err != nil {
		logging.Warn("Faction lookup failed while adding exclusion, keeping typed name",
			"faction_id", factionID,
			"error", err.Error())
		return characterName
	}

	ep, ok := s.factionCfg.ForumEndpoint(faction)
	if !ok {
		return characterName
	}

	resp, _, err := s.forumAPI.GetUserByUsername(ctx, ep, common.NameSlug(characterName))
	if err != nil {
		logging.Warn("Forum user lookup failed while adding exclusion, keeping typed name",
			"faction_id", factionID,
			"character_name", characterName,
			"code", providers.ProviderErrorCode(err),
			"error", err.Error())
		return characterName
	}

	if resp.User.Username == "" {
		return characterName
	}
	return resp.User.Username
}
