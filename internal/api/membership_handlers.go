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

// AddMemberHandler handles POST /api/v1/factions/{factionID}/categories/{categoryType}/{categoryID}/members
func AddMemberHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		var req dtos.AddMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CharacterID == 0 {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		categoryType := chi.URLParam(r, "categoryType")
		categoryID := chi.URLParam(r, "categoryID")

		membership, err := deps.Services.Membership.Add(r.Context(), claims.CharacterID(), factionID, categoryType, categoryID, req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Member added", membership, http.StatusCreated)
	}
}

// EditMembershipHandler handles PUT /api/v1/factions/{factionID}/memberships/{membershipID}
func EditMembershipHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.EditMembershipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		membershipID := chi.URLParam(r, "membershipID")

		membership, err := deps.Services.Membership.EditTitle(r.Context(), factionID, membershipID, req.Title)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membership updated", membership)
	}
}

// TransferMembershipHandler handles POST /api/v1/factions/{factionID}/memberships/{membershipID}/transfer
func TransferMembershipHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.TransferMembershipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CategoryType == "" || req.CategoryID == "" {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		factionID := chi.URLParam(r, "factionID")
		membershipID := chi.URLParam(r, "membershipID")

		membership, err := deps.Services.Membership.Transfer(r.Context(), factionID, membershipID, req)
		if err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membership transferred", membership)
	}
}

// RemoveMembershipHandler handles DELETE /api/v1/factions/{factionID}/memberships/{membershipID}
func RemoveMembershipHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		factionID := chi.URLParam(r, "factionID")
		membershipID := chi.URLParam(r, "membershipID")

		if err := deps.Services.Membership.Remove(r.Context(), factionID, membershipID); err != nil {
			handleServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Membership removed", nil)
	}
}
