package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"factionhq/quartermaster/internal/auth"
	"factionhq/quartermaster/internal/constants"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	os.Setenv("SESSION_JWT_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_JWT_SECRET")

	var got auth.UserClaims
	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = auth.GetUserClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tokenStr := signToken(t, "test-secret", jwt.MapClaims{
		"character_id": "char-1",
		"faction_id":   "faction-1",
		"role":         "MANAGER",
		"game_token":   "game-abc",
	})

	req := httptest.NewRequest("GET", "/api/v1/factions/faction-1/roster/r1/view", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if got == nil {
		t.Fatal("Expected claims in context")
	}
	if got.FactionID() != "faction-1" {
		t.Errorf("Expected faction-1, got %s", got.FactionID())
	}
	if got.GameToken() != "game-abc" {
		t.Errorf("Expected game token carried through, got %s", got.GameToken())
	}
	if got.Role() != constants.RoleManager {
		t.Errorf("Expected MANAGER role, got %s", got.Role())
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run without token")
	}))

	req := httptest.NewRequest("GET", "/api/v1/factions/faction-1/roster/r1/view", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	os.Setenv("SESSION_JWT_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_JWT_SECRET")

	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run with a forged token")
	}))

	tokenStr := signToken(t, "other-secret", jwt.MapClaims{
		"character_id": "char-1",
		"faction_id":   "faction-1",
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NoFaction(t *testing.T) {
	os.Setenv("SESSION_JWT_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_JWT_SECRET")

	handler := AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not run without a faction claim")
	}))

	tokenStr := signToken(t, "test-secret", jwt.MapClaims{
		"character_id": "char-1",
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestFactionScopeMiddleware(t *testing.T) {
	claims := &auth.SessionClaims{
		CharacterIDVal: "char-1",
		FactionIDVal:   "faction-1",
		RoleVal:        constants.RoleMember,
	}

	r := chi.NewRouter()
	r.Route("/factions/{factionID}", func(f chi.Router) {
		f.Use(FactionScopeMiddleware())
		f.Get("/roster", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	// Own faction passes.
	req := httptest.NewRequest("GET", "/factions/faction-1/roster", nil)
	req = req.WithContext(auth.SetUserClaims(req.Context(), claims))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for own faction, got %d", rec.Code)
	}

	// Another faction is forbidden.
	req = httptest.NewRequest("GET", "/factions/faction-2/roster", nil)
	req = req.WithContext(auth.SetUserClaims(req.Context(), claims))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for another faction, got %d", rec.Code)
	}
}

func TestIsManagerMiddleware(t *testing.T) {
	handler := IsManagerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	run := func(role constants.FactionRole) int {
		claims := &auth.SessionClaims{FactionIDVal: "faction-1", RoleVal: role}
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(auth.SetUserClaims(req.Context(), claims))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := run(constants.RoleMember); code != http.StatusForbidden {
		t.Errorf("Expected 403 for member, got %d", code)
	}
	if code := run(constants.RoleManager); code != http.StatusOK {
		t.Errorf("Expected 200 for manager, got %d", code)
	}
	if code := run(constants.RoleAdmin); code != http.StatusOK {
		t.Errorf("Expected 200 for admin, got %d", code)
	}
}
