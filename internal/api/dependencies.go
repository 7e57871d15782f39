package api

import (
	"os"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/db"
	"factionhq/quartermaster/internal/db/repositories"
	"factionhq/quartermaster/internal/logging"
	"factionhq/quartermaster/internal/metrics"
	"factionhq/quartermaster/internal/providers"
	"factionhq/quartermaster/internal/services"
)

type Repositories struct {
	Faction     *repositories.FactionRepository
	Roster      *repositories.RosterRepository
	RosterCache *repositories.RosterCacheRepository
	ForumCache  *repositories.ForumCacheRepository
	Membership  *repositories.MembershipRepository
	Category    *repositories.CategoryRepository
	Exclusion   *repositories.ExclusionRepository
	Snapshot    *repositories.SnapshotRepository
}

type Services struct {
	Cache      common.CacheInterface
	FactionCfg *common.FactionConfigService
	Roster     *services.RosterService
	Section    *services.SectionService
	Sync       *services.SyncService
	Membership *services.MembershipService
	Exclusion  *services.ExclusionService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Faction:     repositories.NewFactionRepository(db.PgDB),
		Roster:      repositories.NewRosterRepository(db.PgDB),
		RosterCache: repositories.NewRosterCacheRepository(db.PgDB),
		ForumCache:  repositories.NewForumCacheRepository(db.PgDB),
		Membership:  repositories.NewMembershipRepository(db.PgDB),
		Category:    repositories.NewCategoryRepository(db.PgDB),
		Exclusion:   repositories.NewExclusionRepository(db.DB),
		Snapshot:    repositories.NewSnapshotRepository(db.PgDB),
	}

	// Redis-backed cache when configured, in-memory otherwise.
	var cacheSvc common.CacheInterface
	if os.Getenv("REDIS_ENABLED") == "true" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cacheSvc = redisCache
		logging.Info("Using Redis cache service")
	} else {
		cacheSvc = common.NewCacheService(600, 1200)
		logging.Info("Using in-memory cache service")
	}

	factionCfg := common.NewFactionConfigService(repos.Faction, cacheSvc)

	gameAPI := providers.NewGameAPIProvider()
	forumAPI := providers.NewForumAPIProvider()

	rosterSvc := services.NewRosterService(
		gameAPI,
		forumAPI,
		factionCfg,
		repos.Roster,
		repos.RosterCache,
		repos.ForumCache,
		cacheSvc,
		metricsReg,
	)

	svcs := &Services{
		Cache:      cacheSvc,
		FactionCfg: factionCfg,
		Roster:     rosterSvc,
		Section:    services.NewSectionService(rosterSvc, repos.Roster),
		Sync: services.NewSyncService(
			repos.Membership,
			repos.Category,
			repos.RosterCache,
			repos.ForumCache,
			repos.Snapshot,
			repos.Exclusion,
			metricsReg,
		),
		Membership: services.NewMembershipService(repos.Membership, repos.Category),
		Exclusion:  services.NewExclusionService(repos.Exclusion, factionCfg, forumAPI),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
