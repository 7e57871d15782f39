package dtos

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// AbasInfo decorates a roster member with their activity score. Absent when
// no score was ever recorded, so callers can distinguish "never recorded"
// from "recorded as zero".
type AbasInfo struct {
	Score      string `json:"score"`
	TotalScore string `json:"total_score"`
}

// RosterMember is one merged, decorated entry in a composed roster view.
type RosterMember struct {
	Character
	Abas *AbasInfo `json:"abas,omitempty"`

	// ForumGroups lists the resolved forum group ids this member's name
	// appeared in. Display only; not used for filtering.
	ForumGroups []int `json:"forum_groups,omitempty"`
}

// RosterViewResult is the output of the roster composition path.
type RosterViewResult struct {
	Members []RosterMember `json:"members"`

	// MissingForumUsers lists expected forum usernames that have no
	// corresponding character in the faction roster at all.
	MissingForumUsers []string `json:"missing_forum_users,omitempty"`

	Labels []RosterLabel `json:"labels,omitempty"`

	// Sections maps section id to classified character ids, present when the
	// caller asked for the stored classification.
	Sections map[string][]int `json:"sections,omitempty"`
}

// SyncCandidate is one proposed addition or removal in a sync preview.
type SyncCandidate struct {
	CharacterID   int    `json:"character_id"`
	CharacterName string `json:"character_name"`

	// IsAlreadyAssigned marks an add candidate holding a primary assignment
	// elsewhere in the faction. Surfaced for human review; the engine does
	// not enforce deselection.
	IsAlreadyAssigned bool `json:"is_already_assigned"`

	// IsExcluded marks an add candidate whose name is on the category's
	// exclusion list.
	IsExcluded bool `json:"is_excluded"`
}

// SyncPreviewResponse is the proposed diff for one category.
type SyncPreviewResponse struct {
	ToAdd    []SyncCandidate `json:"to_add"`
	ToRemove []SyncCandidate `json:"to_remove"`
}

// SyncApplyResult reports a confirmed, applied sync.
type SyncApplyResult struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}
