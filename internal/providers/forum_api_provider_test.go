package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"factionhq/quartermaster/internal/constants"
)

func TestForumAPIProvider_GetGroup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/group/10" {
			t.Errorf("Expected path /group/10, got %s", r.URL.Path)
		}

		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("Expected key query param test-key, got %q", got)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"group":{"members":[{"username":"John_Doe"}],"leaders":[{"username":"Jane_Smith"}]}}`))
	}))
	defer server.Close()

	provider := NewForumAPIProvider()
	ep := ForumEndpoint{BaseURL: server.URL, APIKey: "test-key"}

	ctx := context.Background()
	result, status, err := provider.GetGroup(ctx, ep, 10)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}

	if len(result.Group.Members) != 1 || result.Group.Members[0].Username != "John_Doe" {
		t.Errorf("Expected member John_Doe, got %v", result.Group.Members)
	}

	if len(result.Group.Leaders) != 1 || result.Group.Leaders[0].Username != "Jane_Smith" {
		t.Errorf("Expected leader Jane_Smith, got %v", result.Group.Leaders)
	}
}

func TestForumAPIProvider_GetGroup_MissingEndpointConfig(t *testing.T) {
	provider := NewForumAPIProvider()

	ctx := context.Background()
	_, _, err := provider.GetGroup(ctx, ForumEndpoint{}, 10)

	if err == nil {
		t.Fatal("Expected error for missing endpoint config")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeForumNotConfigured {
		t.Errorf("Expected FORUM_NOT_CONFIGURED, got %s", provErr.Code)
	}
}

func TestForumAPIProvider_GetUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "No such user"}`))
	}))
	defer server.Close()

	provider := NewForumAPIProvider()
	ep := ForumEndpoint{BaseURL: server.URL, APIKey: "test-key"}

	ctx := context.Background()
	_, status, err := provider.GetUser(ctx, ep, 99)

	if status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", status)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}
	if provErr.Code != constants.ErrCodeResourceNotFound {
		t.Errorf("Expected RESOURCE_NOT_FOUND, got %s", provErr.Code)
	}
}

func TestForumAPIProvider_GetUser_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/7" {
			t.Errorf("Expected path /user/7, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"user":{"id":7,"username":"John_Doe"}}`))
	}))
	defer server.Close()

	provider := NewForumAPIProvider()
	ep := ForumEndpoint{BaseURL: server.URL, APIKey: "test-key"}

	ctx := context.Background()
	result, _, err := provider.GetUser(ctx, ep, 7)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.User.Username != "John_Doe" {
		t.Errorf("Expected John_Doe, got %s", result.User.Username)
	}
}

func TestForumAPIProvider_GetUserByUsername_EmptyName(t *testing.T) {
	provider := NewForumAPIProvider()

	ctx := context.Background()
	_, status, err := provider.GetUserByUsername(ctx, ForumEndpoint{BaseURL: "https://forum.example", APIKey: "k"}, "")

	if err == nil {
		t.Fatal("Expected error for empty username")
	}

	if status != 0 {
		t.Errorf("Expected status 0, got %d", status)
	}
}
