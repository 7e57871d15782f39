package constants

// Error codes for external sources and the sync engine

// Upstream errors
const (
	ErrCodeUpstreamFetchFailed = "UPSTREAM_FETCH_FAILED"
	ErrCodeReauthRequired      = "REAUTH_REQUIRED"
	ErrCodeNetworkError        = "NETWORK_ERROR"
	ErrCodeRateLimited         = "RATE_LIMITED"
	ErrCodeResourceNotFound    = "RESOURCE_NOT_FOUND"
	ErrCodeInvalidDataFormat   = "INVALID_DATA_FORMAT"
)

// Sync engine errors
const (
	ErrCodeCachePreconditionFailed = "CACHE_PRECONDITION_FAILED"
	ErrCodeInvariantViolation      = "INVARIANT_VIOLATION"
	ErrCodeForumNotConfigured      = "FORUM_NOT_CONFIGURED"
	ErrCodeCategoryNotFound        = "CATEGORY_NOT_FOUND"
	ErrCodeMembershipNotFound      = "MEMBERSHIP_NOT_FOUND"
	ErrCodeForbidden               = "FORBIDDEN"
)

// ErrorMessages maps error codes to human-readable messages
var ErrorMessages = map[string]string{
	ErrCodeUpstreamFetchFailed: "The game-world API returned an error while fetching the faction roster",
	ErrCodeReauthRequired:      "Your game-world session has expired. Please log in again",
	ErrCodeNetworkError:        "Unable to reach the external source",
	ErrCodeRateLimited:         "Rate limit exceeded. Please try again later",
	ErrCodeResourceNotFound:    "The requested resource was not found at the external source",
	ErrCodeInvalidDataFormat:   "The external source returned data in an unexpected format",

	ErrCodeCachePreconditionFailed: "Cached roster data is missing. Run a manual roster refresh before syncing",
	ErrCodeInvariantViolation:      "This character already holds a primary assignment elsewhere in the faction",
	ErrCodeForumNotConfigured:      "No forum group is configured for this category",
	ErrCodeCategoryNotFound:        "The requested unit or detail was not found",
	ErrCodeMembershipNotFound:      "The requested membership record was not found",
	ErrCodeForbidden:               "You do not have permission to manage this category",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := ErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
