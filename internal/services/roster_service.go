package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/db/repositories"
	"factionhq/quartermaster/internal/logging"
	"factionhq/quartermaster/internal/metrics"
	"factionhq/quartermaster/internal/models/dtos"
	models "factionhq/quartermaster/internal/models/gorm"
	"factionhq/quartermaster/internal/providers"

	"golang.org/x/sync/errgroup"
)

// GameAPI is the game-world API surface the aggregator needs.
type GameAPI interface {
	GetFactionRoster(ctx context.Context, token string, factionGameID int) (*dtos.FactionRosterResponse, int, error)
	GetFactionAbas(ctx context.Context, token string, factionGameID int) (*dtos.AbasResponse, int, error)
}

// ForumAPI is the forum API surface the aggregator needs.
type ForumAPI interface {
	GetGroup(ctx context.Context, ep providers.ForumEndpoint, groupID int) (*dtos.ForumGroupResponse, int, error)
	GetUser(ctx context.Context, ep providers.ForumEndpoint, userID int) (*dtos.ForumUserResponse, int, error)
}

// RosterService composes the merged, decorated, filtered roster view. It
// owns the freshness decision: the cache is refetched when stale or when the
// caller forces a refresh, and used as-is otherwise.
type RosterService struct {
	gameAPI        GameAPI
	forumAPI       ForumAPI
	factionCfg     *common.FactionConfigService
	rosterRepo     *repositories.RosterRepository
	cacheRepo      *repositories.RosterCacheRepository
	forumCacheRepo *repositories.ForumCacheRepository
	cache          common.CacheInterface
	metricsReg     *metrics.MetricsRegistry
}

func NewRosterService(
	gameAPI GameAPI,
	forumAPI ForumAPI,
	factionCfg *common.FactionConfigService,
	rosterRepo *repositories.RosterRepository,
	cacheRepo *repositories.RosterCacheRepository,
	forumCacheRepo *repositories.ForumCacheRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *RosterService {
	return &RosterService{
		gameAPI:        gameAPI,
		forumAPI:       forumAPI,
		factionCfg:     factionCfg,
		rosterRepo:     rosterRepo,
		cacheRepo:      cacheRepo,
		forumCacheRepo: forumCacheRepo,
		cache:          cache,
		metricsReg:     metricsReg,
	}
}

// ComposeRoster produces the current filtered roster view for one roster of
// a faction. The token is the caller's game-world session credential.
func (s *RosterService) ComposeRoster(ctx context.Context, token, factionID, rosterID string, forceRefresh bool) (*dtos.RosterViewResult, error) {
	faction, err := s.factionCfg.GetFaction(ctx, factionID)
	if err != nil {
		return nil, err
	}

	members, err := s.currentMembers(ctx, token, faction, forceRefresh)
	if err != nil {
		return nil, err
	}

	scores, err := s.cacheRepo.GetScores(ctx, factionID)
	if err != nil {
		return nil, err
	}

	decorated := decorateMembers(members, scores)

	roster, err := s.rosterRepo.GetByID(ctx, factionID, rosterID)
	if err != nil {
		return nil, err
	}

	cfg := dtos.ParseRosterFilterConfig(roster.FilterConfig)
	if cfg == nil && roster.FilterConfig != nil && *roster.FilterConfig != "" {
		logging.Warn("Malformed roster filter config, composing without filters",
			"roster_id", rosterID, "faction_id", factionID)
	}

	var forum *ForumResolution
	if cfg.UsesForumFilters() {
		if ep, ok := s.factionCfg.ForumEndpoint(faction); ok {
			forum = s.resolveForum(ctx, ep, faction.ID, cfg)
			attachForumGroups(decorated, forum)
		}
	}

	kept := FilterMembers(decorated, cfg, forum)

	var missing []string
	if cfg != nil && cfg.AlertForumUsersMissing {
		missing = MissingForumUsers(decorated, forum)
	}

	result := &dtos.RosterViewResult{
		Members:           kept,
		MissingForumUsers: missing,
	}
	if cfg != nil {
		result.Labels = cfg.Labels
	}

	if len(roster.Sections) > 0 {
		sectionIDs := make([]string, 0, len(roster.Sections))
		for _, sec := range roster.Sections {
			sectionIDs = append(sectionIDs, sec.ID)
		}
		sections, err := s.rosterRepo.GetSectionMembers(ctx, sectionIDs)
		if err != nil {
			return nil, err
		}
		result.Sections = sections
	}

	return result, nil
}

// currentMembers returns the faction's member list, refetching both the
// roster and ABAS sources when the cache is stale or a refresh is forced.
// The joint threshold is the minimum of the two configured thresholds, so a
// refetch happens whenever either source would otherwise be stale.
func (s *RosterService) currentMembers(ctx context.Context, token string, faction *models.Faction, forceRefresh bool) ([]dtos.Character, error) {
	cached, err := s.cacheRepo.GetRoster(ctx, faction.ID)
	if err != nil {
		return nil, err
	}

	threshold := common.JointThreshold(faction.EffectiveRosterMinutes(), faction.EffectiveAbasMinutes())

	var lastSync *time.Time
	if cached != nil {
		lastSync = cached.LastSync
	}

	if !forceRefresh && !common.IsStale(time.Now(), lastSync, threshold) {
		return repositories.DecodeMembers(cached)
	}

	trigger := "stale"
	if forceRefresh {
		trigger = "forced"
	}

	members, err := s.refreshCaches(ctx, token, faction)
	if err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.RosterRefreshesTotal.WithLabelValues(trigger).Inc()
	}

	return members, nil
}

// refreshCaches fetches the faction roster and ABAS sources concurrently and
// overwrites both caches. The roster fetch is the primary source: its
// failure aborts the refresh. ABAS is best-effort and degrades to a warning.
func (s *RosterService) refreshCaches(ctx context.Context, token string, faction *models.Faction) ([]dtos.Character, error) {
	var (
		rosterResp *dtos.FactionRosterResponse
		abasResp   *dtos.AbasResponse
		abasErr    error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		resp, _, err := s.gameAPI.GetFactionRoster(gctx, token, faction.GameID)
		s.observeFetch("faction_roster", start, err)
		if err != nil {
			return err
		}
		rosterResp = resp
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		resp, _, err := s.gameAPI.GetFactionAbas(gctx, token, faction.GameID)
		s.observeFetch("abas", start, err)
		if err != nil {
			// Best-effort: a failing ABAS fetch must not block the roster.
			abasErr = err
			return nil
		}
		abasResp = resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if abasErr != nil {
		logging.Warn("ABAS fetch failed, proceeding without fresh scores",
			"faction_id", faction.ID,
			"code", providers.ProviderErrorCode(abasErr),
			"error", abasErr.Error())
	}

	now := time.Now()
	members := rosterResp.Data.Members

	if err := s.cacheRepo.UpsertRoster(ctx, faction.ID, members, now); err != nil {
		return nil, err
	}
	if abasResp != nil {
		if err := s.cacheRepo.UpsertScores(ctx, faction.ID, abasResp.Data, now); err != nil {
			return nil, err
		}
	}

	logging.Info("Faction roster refreshed",
		"faction_id", faction.ID,
		"members", len(members),
	)

	return members, nil
}

// resolveForum fetches every forum group and user referenced by the filter
// config, concurrently and independently fault-tolerant: a failing
// individual fetch contributes nothing rather than aborting the composition.
func (s *RosterService) resolveForum(ctx context.Context, ep providers.ForumEndpoint, factionID string, cfg *dtos.RosterFilterConfig) *ForumResolution {
	res := NewForumResolution()

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	addGroup := func(groupID int, exclude bool) {
		g.Go(func() error {
			usernames := s.fetchGroupUsernames(gctx, ep, factionID, groupID)

			mu.Lock()
			defer mu.Unlock()
			for _, username := range usernames {
				norm := common.NormalizeName(username)
				res.GroupsByName[norm] = append(res.GroupsByName[norm], groupID)
				if exclude {
					res.Exclude[norm] = username
				} else {
					res.Include[norm] = username
				}
			}
			return nil
		})
	}

	addUser := func(userID int, exclude bool) {
		g.Go(func() error {
			username, ok := s.fetchForumUsername(gctx, ep, userID)
			if !ok {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			norm := common.NormalizeName(username)
			if exclude {
				res.Exclude[norm] = username
			} else {
				res.Include[norm] = username
			}
			return nil
		})
	}

	for _, id := range cfg.IncludeForumGroups {
		addGroup(id, false)
	}
	for _, id := range cfg.ExcludeForumGroups {
		addGroup(id, true)
	}
	for _, id := range cfg.IncludeForumUsers {
		addUser(id, false)
	}
	for _, id := range cfg.ExcludeForumUsers {
		addUser(id, true)
	}

	_ = g.Wait()

	return res
}

// fetchGroupUsernames fetches one forum group's member and leader usernames
// and refreshes its cache row. A failed fetch yields an empty contribution.
func (s *RosterService) fetchGroupUsernames(ctx context.Context, ep providers.ForumEndpoint, factionID string, groupID int) []string {
	start := time.Now()
	resp, _, err := s.forumAPI.GetGroup(ctx, ep, groupID)
	s.observeFetch("forum_group", start, err)
	if err != nil {
		logging.Warn("Forum group fetch failed, contributing empty set",
			"group_id", groupID,
			"code", providers.ProviderErrorCode(err),
			"error", err.Error())
		return nil
	}

	members := make([]string, 0, len(resp.Group.Members))
	for _, u := range resp.Group.Members {
		members = append(members, u.Username)
	}
	leaders := make([]string, 0, len(resp.Group.Leaders))
	for _, u := range resp.Group.Leaders {
		leaders = append(leaders, u.Username)
	}

	if err := s.forumCacheRepo.UpsertGroup(ctx, factionID, groupID, members, leaders, time.Now()); err != nil {
		logging.Warn("Failed to cache forum group", "group_id", groupID, "error", err.Error())
	}

	return append(members, leaders...)
}

// fetchForumUsername resolves one forum user id to a username, memoized in
// the ephemeral cache since user rows change rarely.
func (s *RosterService) fetchForumUsername(ctx context.Context, ep providers.ForumEndpoint, userID int) (string, bool) {
	key := fmt.Sprintf("%s%d", constants.CachePrefixForumUser, userID)

	val, err := s.cache.GetOrSet(key, 30*time.Minute, func() (any, error) {
		start := time.Now()
		resp, _, err := s.forumAPI.GetUser(ctx, ep, userID)
		s.observeFetch("forum_user", start, err)
		if err != nil {
			return nil, err
		}
		return resp.User.Username, nil
	})
	if err != nil {
		logging.Warn("Forum user fetch failed, contributing empty set",
			"user_id", userID,
			"code", providers.ProviderErrorCode(err),
			"error", err.Error())
		return "", false
	}

	username, ok := val.(string)
	return username, ok && username != ""
}

func (s *RosterService) observeFetch(source string, start time.Time, err error) {
	if s.metricsReg == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metricsReg.UpstreamFetchesTotal.WithLabelValues(source, outcome).Inc()
	s.metricsReg.UpstreamFetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// decorateMembers merges activity scores onto the member list. A character
// with no score row decorates as absent, not zero.
func decorateMembers(members []dtos.Character, scores map[int]models.ActivityScore) []dtos.RosterMember {
	out := make([]dtos.RosterMember, 0, len(members))
	for _, c := range members {
		m := dtos.RosterMember{Character: c}
		if score, ok := scores[c.CharacterID]; ok {
			m.Abas = &dtos.AbasInfo{
				Score:      score.Score,
				TotalScore: score.TotalScore,
			}
		}
		out = append(out, m)
	}
	return out
}

// attachForumGroups copies the resolved group memberships onto each member
// for display.
func attachForumGroups(members []dtos.RosterMember, forum *ForumResolution) {
	if forum == nil {
		return
	}
	for i := range members {
		norm := common.NormalizeName(members[i].CharacterName)
		if groups, ok := forum.GroupsByName[norm]; ok {
			members[i].ForumGroups = groups
		}
	}
}
