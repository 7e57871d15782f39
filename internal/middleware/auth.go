package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"factionhq/quartermaster/internal/auth"
	"factionhq/quartermaster/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer session token and stores the parsed
// claims in the request context. The token carries the caller's character,
// faction, role, and the game-world credential used for upstream fetches.
func AuthMiddleware() func(http.Handler) http.Handler {
	secret := []byte(os.Getenv("SESSION_JWT_SECRET"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized. Invalid session token", http.StatusUnauthorized)
				return
			}

			sessionClaims := &auth.SessionClaims{
				CharacterIDVal: claimString(claims, "character_id"),
				FactionIDVal:   claimString(claims, "faction_id"),
				RoleVal:        constants.FactionRole(claimString(claims, "role")),
				GameTokenVal:   claimString(claims, "game_token"),
			}

			if sessionClaims.FactionIDVal == "" {
				http.Error(w, "Unauthorized. Session has no faction", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), sessionClaims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
