package middleware

import (
	"net/http"

	"factionhq/quartermaster/internal/auth"

	"github.com/go-chi/chi/v5"
)

// IsManagerMiddleware gates category management: sync preview/apply,
// membership edits, and exclusion list changes.
func IsManagerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			if claims == nil || !claims.Role().CanManageCategories() {
				http.Error(w, "Forbidden. Need manager perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FactionScopeMiddleware rejects requests whose URL faction doesn't match
// the session's faction. Every /factions/{factionID} route runs behind it.
func FactionScopeMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())
			factionID := chi.URLParam(r, "factionID")
			if claims == nil || factionID == "" || claims.FactionID() != factionID {
				http.Error(w, "Forbidden. Wrong faction", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
