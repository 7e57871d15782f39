package api

import (
	"net/http"
	"time"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/providers"
	"factionhq/quartermaster/internal/services"
)

// handleServiceError maps service and provider errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	if domainErr, ok := err.(*services.DomainError); ok {
		common.RespondError(w, initTime, err, domainErr.Message, mapErrorCodeToHTTPStatus(domainErr.Code))
		return
	}

	if provErr, ok := err.(*providers.ProviderError); ok {
		common.RespondError(w, initTime, err, constants.GetErrorMessage(provErr.Code), mapProviderErrorToHTTPStatus(provErr))
		return
	}

	common.RespondError(w, initTime, err, "An unexpected error occurred", http.StatusInternalServerError)
}

func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case constants.ErrCodeCategoryNotFound, constants.ErrCodeMembershipNotFound:
		return http.StatusNotFound
	case constants.ErrCodeForumNotConfigured:
		return http.StatusBadRequest
	case constants.ErrCodeCachePreconditionFailed:
		return http.StatusPreconditionFailed
	case constants.ErrCodeInvariantViolation:
		return http.StatusConflict
	case constants.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func mapProviderErrorToHTTPStatus(provErr *providers.ProviderError) int {
	switch provErr.Code {
	case constants.ErrCodeReauthRequired:
		return http.StatusUnauthorized
	case constants.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		// Propagate the upstream status when it was an HTTP failure.
		if provErr.Status >= 400 {
			return provErr.Status
		}
		return http.StatusBadGateway
	}
}
