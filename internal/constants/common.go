package constants

// Cache key prefixes for the in-process / Redis cache layer
type CachePrefix string

const (
	CachePrefixFactionConfig CachePrefix = "faction_config:"
	CachePrefixForumUser     CachePrefix = "forum_user:"
)

// Default freshness thresholds in minutes. Factions can override both.
const (
	DefaultRosterSyncMinutes = 15
	DefaultAbasSyncMinutes   = 60
)

// Category types for memberships
const (
	CategoryTypeUnit   = "unit"
	CategoryTypeDetail = "detail"
)

// API status strings
type APIStatus string

const (
	APIStatusOk    APIStatus = "Ok"
	APIStatusError APIStatus = "Error"
)
