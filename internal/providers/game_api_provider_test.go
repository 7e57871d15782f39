package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"factionhq/quartermaster/internal/constants"
)

func TestGameAPIProvider_GetFactionRoster_Success(t *testing.T) {
	// Mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}

		if r.URL.Path != "/faction/42" {
			t.Errorf("Expected path /faction/42, got %s", r.URL.Path)
		}

		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Expected caller's bearer credential, got %q", got)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"members":[
			{"character_id":1,"character_name":"John Doe","rank":3,"rank_name":"Officer"},
			{"character_id":2,"character_name":"Jane Smith","rank":5,"rank_name":"Sergeant"}
		]}}`))
	}))
	defer server.Close()

	provider := &GameAPIProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx := context.Background()
	result, status, err := provider.GetFactionRoster(ctx, "test-token", 42)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}

	if len(result.Data.Members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(result.Data.Members))
	}

	if result.Data.Members[0].CharacterName != "John Doe" {
		t.Errorf("Expected John Doe, got %s", result.Data.Members[0].CharacterName)
	}
}

func TestGameAPIProvider_GetFactionRoster_EmptyToken(t *testing.T) {
	provider := NewGameAPIProvider()

	ctx := context.Background()
	_, status, err := provider.GetFactionRoster(ctx, "", 42)

	if err == nil {
		t.Fatal("Expected error for empty token")
	}

	if status != 0 {
		t.Errorf("Expected status 0, got %d", status)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeReauthRequired {
		t.Errorf("Expected REAUTH_REQUIRED, got %s", provErr.Code)
	}
}

func TestGameAPIProvider_GetFactionRoster_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Session expired"}`))
	}))
	defer server.Close()

	provider := &GameAPIProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx := context.Background()
	_, status, err := provider.GetFactionRoster(ctx, "stale-token", 42)

	if status != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", status)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}

	// 401 carries the distinct re-login code, not a generic upstream error.
	if provErr.Code != constants.ErrCodeReauthRequired {
		t.Errorf("Expected REAUTH_REQUIRED, got %s", provErr.Code)
	}
}

func TestGameAPIProvider_GetFactionAbas_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/faction/42/abas" {
			t.Errorf("Expected path /faction/42/abas, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error": "upstream down"}`))
	}))
	defer server.Close()

	provider := &GameAPIProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx := context.Background()
	_, status, err := provider.GetFactionAbas(ctx, "test-token", 42)

	if status != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", status)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeUpstreamFetchFailed {
		t.Errorf("Expected UPSTREAM_FETCH_FAILED, got %s", provErr.Code)
	}
}

func TestGameAPIProvider_GetFactionRoster_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := &GameAPIProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx := context.Background()
	_, _, err := provider.GetFactionRoster(ctx, "test-token", 42)

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeRateLimited {
		t.Errorf("Expected RATE_LIMITED, got %s", provErr.Code)
	}
}

func TestGameAPIProvider_GetFactionAbas_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":[{"character_id":1,"faction_id":42,"score":"12.50","total_score":"140.00"}]}`))
	}))
	defer server.Close()

	provider := &GameAPIProvider{
		BaseURL: server.URL,
		Client:  &http.Client{},
	}

	ctx := context.Background()
	result, _, err := provider.GetFactionAbas(ctx, "test-token", 42)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(result.Data) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(result.Data))
	}

	// Scores stay decimal strings end to end.
	if result.Data[0].Score != "12.50" {
		t.Errorf("Expected score 12.50, got %s", result.Data[0].Score)
	}
}
