package api

import (
	"encoding/json"
	"net/http"
	"time"

	"factionhq/quartermaster/internal/auth"
	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// PreviewSyncHandler handles GET /api/v1/factions/{factionID}/categories/{categoryType}/{categoryID}/sync/preview
func PreviewSyncHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		factionID := chi.URLParam(r, "factionID")
		categoryType := chi.URLParam(r, "categoryType")
		categoryID := chi.URLParam(r, "categoryID")

		preview, err := deps.Services.Sync.PreviewSync(r.Context(), factionID, categoryType, categoryID)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Sync preview computed", preview)
	}
}

// ApplySyncHandler handles POST /api/v1/factions/{factionID}/categories/{categoryType}/{categoryID}/sync/apply
func ApplySyncHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.SyncApplyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		categoryType := chi.URLParam(r, "categoryType")
		categoryID := chi.URLParam(r, "categoryID")

		result, err := deps.Services.Sync.ApplySync(r.Context(), claims.CharacterID(), factionID, categoryType, categoryID, req.AddIDs, req.RemoveIDs)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Sync applied", result)
	}
}

// ListExclusionsHandler handles GET /api/v1/factions/{factionID}/categories/{categoryType}/{categoryID}/exclusions
func ListExclusionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		categoryType := chi.URLParam(r, "categoryType")
		categoryID := chi.URLParam(r, "categoryID")

		entries, err := deps.Services.Exclusion.List(r.Context(), categoryType, categoryID)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Exclusions listed", entries)
	}
}

// AddExclusionHandler handles POST /api/v1/factions/{factionID}/categories/{categoryType}/{categoryID}/exclusions
func AddExclusionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ExclusionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CharacterName == "" {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		categoryType := chi.URLParam(r, "categoryType")
		categoryID := chi.URLParam(r, "categoryID")

		if err := deps.Services.Exclusion.Add(r.Context(), factionID, categoryType, categoryID, req.CharacterName); err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Exclusion added", nil, http.StatusCreated)
	}
}

// DeleteExclusionHandler handles DELETE /api/v1/factions/{factionID}/categories/{categoryType}/{categoryID}/exclusions
func DeleteExclusionHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ExclusionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CharacterName == "" {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		categoryType := chi.URLParam(r, "categoryType")
		categoryID := chi.URLParam(r, "categoryID")

		if err := deps.Services.Exclusion.Delete(r.Context(), categoryType, categoryID, req.CharacterName); err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Exclusion removed", nil)
	}
}
