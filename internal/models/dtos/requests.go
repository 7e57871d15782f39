package dtos

// SyncApplyRequest is the human-confirmed subset of a sync preview.
type SyncApplyRequest struct {
	AddIDs    []int `json:"add_ids"`
	RemoveIDs []int `json:"remove_ids"`
}

// AddMemberRequest adds a single character to a category.
type AddMemberRequest struct {
	CharacterID int     `json:"character_id"`
	Title       *string `json:"title,omitempty"`
}

// EditMembershipRequest updates a membership's title.
type EditMembershipRequest struct {
	Title *string `json:"title"`
}

// TransferMembershipRequest moves a membership to another category.
type TransferMembershipRequest struct {
	CategoryType string `json:"category_type"`
	CategoryID   string `json:"category_id"`
}

// ExclusionRequest adds or removes a name on a category's exclusion list.
type ExclusionRequest struct {
	CharacterName string `json:"character_name"`
}
