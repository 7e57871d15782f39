package routes

import (
	"factionhq/quartermaster/internal/api"
	"factionhq/quartermaster/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware()) // global: all routes carry a bearer session token

		v1.Route("/factions/{factionID}", func(faction chi.Router) {
			faction.Use(middleware.FactionScopeMiddleware()) // callers only see their own faction

			faction.Get("/roster/{rosterID}/view", api.ViewRosterHandler(deps))

			// Manager-only group
			faction.Group(func(manager chi.Router) {
				manager.Use(middleware.IsManagerMiddleware())

				manager.Post("/roster/{rosterID}/sections/classify", api.ClassifySectionsHandler(deps))

				manager.Route("/categories/{categoryType}/{categoryID}", func(cat chi.Router) {
					cat.Get("/sync/preview", api.PreviewSyncHandler(deps))
					cat.Post("/sync/apply", api.ApplySyncHandler(deps))

					cat.Post("/members", api.AddMemberHandler(deps))

					cat.Get("/exclusions", api.ListExclusionsHandler(deps))
					cat.Post("/exclusions", api.AddExclusionHandler(deps))
					cat.Delete("/exclusions", api.DeleteExclusionHandler(deps))
				})

				manager.Route("/memberships/{membershipID}", func(m chi.Router) {
					m.Put("/", api.EditMembershipHandler(deps))
					m.Post("/transfer", api.TransferMembershipHandler(deps))
					m.Delete("/", api.RemoveMembershipHandler(deps))
				})
			})
		})
	})
}
