package common

import (
	"context"
	"time"

	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/db/repositories"
	models "factionhq/quartermaster/internal/models/gorm"
	"factionhq/quartermaster/internal/providers"
)

// FactionConfigService serves faction rows (forum endpoint, thresholds)
// through the ephemeral cache, so composition and sync paths don't hit the
// factions table on every request.
type FactionConfigService struct {
	repo  *repositories.FactionRepository
	cache CacheInterface
}

func NewFactionConfigService(r *repositories.FactionRepository, c CacheInterface) *FactionConfigService {
	return &FactionConfigService{repo: r, cache: c}
}

func factionCacheKey(factionID string) string {
	return string(constants.CachePrefixFactionConfig) + factionID
}

// GetFaction retrieves a faction, cached for a short window.
func (s *FactionConfigService) GetFaction(ctx context.Context, factionID string) (*models.Faction, error) {
	key := factionCacheKey(factionID)

	if val, found := s.cache.Get(key); found {
		if faction, ok := val.(*models.Faction); ok {
			return faction, nil
		}
		// Cached through Redis the value round-trips as generic JSON;
		// fall through to a direct load in that case.
	}

	faction, err := s.repo.GetByID(ctx, factionID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, faction, 5*time.Minute)
	return faction, nil
}

// Invalidate evicts a faction's cached config after an edit.
func (s *FactionConfigService) Invalidate(factionID string) {
	s.cache.Delete(factionCacheKey(factionID))
}

// ForumEndpoint builds the provider endpoint config for a faction, or false
// when the faction has no forum configured.
func (s *FactionConfigService) ForumEndpoint(faction *models.Faction) (providers.ForumEndpoint, bool) {
	if !faction.ForumConfigured() {
		return providers.ForumEndpoint{}, false
	}
	return providers.ForumEndpoint{
		BaseURL: *faction.ForumBaseURL,
		APIKey:  *faction.ForumAPIKey,
	}, true
}
