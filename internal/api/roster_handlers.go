package api

import (
	"net/http"
	"time"

	"factionhq/quartermaster/internal/auth"
	"factionhq/quartermaster/internal/common"

	"github.com/go-chi/chi/v5"
)

// ViewRosterHandler handles GET /api/v1/factions/{factionID}/roster/{rosterID}/view
//
// ?refresh=1 forces a cache refetch regardless of freshness.
func ViewRosterHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		rosterID := chi.URLParam(r, "rosterID")
		forceRefresh := r.URL.Query().Get("refresh") == "1"

		view, err := deps.Services.Roster.ComposeRoster(r.Context(), claims.GameToken(), factionID, rosterID, forceRefresh)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Roster composed", view)
	}
}

// ClassifySectionsHandler handles POST /api/v1/factions/{factionID}/roster/{rosterID}/sections/classify
//
// The explicit auto-classification action. Replaces every section's member
// list with the classifier's output.
func ClassifySectionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		rosterID := chi.URLParam(r, "rosterID")

		assignment, err := deps.Services.Section.ClassifyRoster(r.Context(), claims.GameToken(), factionID, rosterID)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Sections classified", assignment)
	}
}
