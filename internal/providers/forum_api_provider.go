package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/models/dtos"
)

// ForumEndpoint is one faction's forum API configuration. Factions without
// a configured endpoint simply have forum features unavailable.
type ForumEndpoint struct {
	BaseURL string
	APIKey  string
}

// ForumAPIProvider implements a provider for the discussion-forum API.
// The endpoint is per-faction, so every call takes the endpoint config.
type ForumAPIProvider struct {
	Client *http.Client
}

// NewForumAPIProvider creates a new forum API provider
func NewForumAPIProvider() *ForumAPIProvider {
	return &ForumAPIProvider{
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetGroup fetches a forum group's member and leader username lists
func (p *ForumAPIProvider) GetGroup(ctx context.Context, ep ForumEndpoint, groupID int) (*dtos.ForumGroupResponse, int, error) {
	endpoint := fmt.Sprintf("/group/%d", groupID)

	var result dtos.ForumGroupResponse
	status, err := p.doGET(ctx, ep, endpoint, &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// GetUser fetches a single forum user by id
func (p *ForumAPIProvider) GetUser(ctx context.Context, ep ForumEndpoint, userID int) (*dtos.ForumUserResponse, int, error) {
	endpoint := fmt.Sprintf("/user/%d", userID)

	var result dtos.ForumUserResponse
	status, err := p.doGET(ctx, ep, endpoint, &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// GetUserByUsername fetches a single forum user by username
func (p *ForumAPIProvider) GetUserByUsername(ctx context.Context, ep ForumEndpoint, name string) (*dtos.ForumUserResponse, int, error) {
	if name == "" {
		return nil, 0, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Username cannot be empty",
		}
	}
	endpoint := "/user/username/" + url.PathEscape(name)

	var result dtos.ForumUserResponse
	status, err := p.doGET(ctx, ep, endpoint, &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// doGET performs a GET request with the faction's forum key as query param
func (p *ForumAPIProvider) doGET(ctx context.Context, ep ForumEndpoint, endpoint string, result interface{}) (int, error) {
	if ep.BaseURL == "" || ep.APIKey == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeForumNotConfigured,
			Message: constants.GetErrorMessage(constants.ErrCodeForumNotConfigured),
		}
	}

	reqURL := fmt.Sprintf("%s%s?key=%s", ep.BaseURL, endpoint, url.QueryEscape(ep.APIKey))
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		code := constants.ErrCodeUpstreamFetchFailed
		if resp.StatusCode == http.StatusNotFound {
			code = constants.ErrCodeResourceNotFound
		}
		return resp.StatusCode, &ProviderError{
			Code:    code,
			Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, endpoint),
			Details: string(bodyBytes),
			Status:  resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}
