package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/models/dtos"
)

// GameAPIProvider implements a provider for the game-world API. Requests
// authenticate with the bearer credential from the caller's session, so a
// 401 means the caller must re-login rather than a server misconfiguration.
type GameAPIProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewGameAPIProvider creates a new game-world API provider
func NewGameAPIProvider() *GameAPIProvider {
	baseURL := os.Getenv("GAME_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.game-world.example/v1" // Default
	}

	return &GameAPIProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetFactionRoster fetches the full member list for a faction
func (p *GameAPIProvider) GetFactionRoster(ctx context.Context, token string, factionGameID int) (*dtos.FactionRosterResponse, int, error) {
	endpoint := fmt.Sprintf("/faction/%d", factionGameID)

	var result dtos.FactionRosterResponse
	status, err := p.doGET(ctx, token, endpoint, &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// GetFactionAbas fetches per-character activity scores for a faction
func (p *GameAPIProvider) GetFactionAbas(ctx context.Context, token string, factionGameID int) (*dtos.AbasResponse, int, error) {
	endpoint := fmt.Sprintf("/faction/%d/abas", factionGameID)

	var result dtos.AbasResponse
	status, err := p.doGET(ctx, token, endpoint, &result)
	if err != nil {
		return nil, status, err
	}

	return &result, status, nil
}

// doGET performs a GET request with the caller's bearer credential
func (p *GameAPIProvider) doGET(ctx context.Context, token, endpoint string, result interface{}) (int, error) {
	if token == "" {
		return 0, &ProviderError{
			Code:    constants.ErrCodeReauthRequired,
			Message: "No game-world session credential supplied",
		}
	}

	url := p.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return 0, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if err := p.handleHTTPError(resp, endpoint); err != nil {
		return resp.StatusCode, err
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, &ProviderError{
			Code:    constants.ErrCodeInvalidDataFormat,
			Message: "Failed to decode response",
			Details: string(bodyBytes),
			Status:  resp.StatusCode,
			Err:     err,
		}
	}

	return resp.StatusCode, nil
}

// handleHTTPError converts HTTP errors to ProviderError
func (p *GameAPIProvider) handleHTTPError(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	body := string(bodyBytes)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Distinct code: the caller must be routed through re-login, not
		// shown a generic upstream error.
		return &ProviderError{
			Code:    constants.ErrCodeReauthRequired,
			Message: constants.GetErrorMessage(constants.ErrCodeReauthRequired),
			Details: body,
			Status:  resp.StatusCode,
		}
	case http.StatusNotFound:
		return &ProviderError{
			Code:    constants.ErrCodeResourceNotFound,
			Message: fmt.Sprintf("Resource not found: %s", endpoint),
			Details: body,
			Status:  resp.StatusCode,
		}
	case http.StatusTooManyRequests:
		return &ProviderError{
			Code:    constants.ErrCodeRateLimited,
			Message: constants.GetErrorMessage(constants.ErrCodeRateLimited),
			Details: body,
			Status:  resp.StatusCode,
		}
	default:
		return &ProviderError{
			Code:    constants.ErrCodeUpstreamFetchFailed,
			Message: fmt.Sprintf("HTTP %d from %s", resp.StatusCode, endpoint),
			Details: body,
			Status:  resp.StatusCode,
		}
	}
}
