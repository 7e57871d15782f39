package dtos

import "encoding/json"

// RosterLabel is one entry in a roster's label palette. Labels decorate the
// view only; they play no part in filtering.
type RosterLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RosterFilterConfig is the user-authored declarative rule document attached
// to a roster.
type RosterFilterConfig struct {
	IncludeRanks       []int         `json:"include_ranks"`
	ExcludeRanks       []int         `json:"exclude_ranks"`
	IncludeMembers     []string      `json:"include_members"`
	ExcludeMembers     []string      `json:"exclude_members"`
	IncludeForumGroups []int         `json:"include_forum_groups"`
	ExcludeForumGroups []int         `json:"exclude_forum_groups"`
	IncludeForumUsers  []int         `json:"include_forum_users"`
	ExcludeForumUsers  []int         `json:"exclude_forum_users"`
	Labels             []RosterLabel `json:"labels"`

	AlertForumUsersMissing bool `json:"alert_forum_users_missing"`
}

// UsesForumFilters reports whether the config references any forum groups or
// forum users, i.e. whether forum resolution is needed at composition time.
func (c *RosterFilterConfig) UsesForumFilters() bool {
	if c == nil {
		return false
	}
	return len(c.IncludeForumGroups) > 0 || len(c.ExcludeForumGroups) > 0 ||
		len(c.IncludeForumUsers) > 0 || len(c.ExcludeForumUsers) > 0
}

// ParseRosterFilterConfig decodes a stored filter document. Malformed JSON
// yields nil, meaning "no filtering applied"; it never fails the caller.
func ParseRosterFilterConfig(raw *string) *RosterFilterConfig {
	if raw == nil || *raw == "" {
		return nil
	}
	var cfg RosterFilterConfig
	if err := json.Unmarshal([]byte(*raw), &cfg); err != nil {
		return nil
	}
	return &cfg
}

// SectionRuleConfig is the rule document attached to one roster section.
type SectionRuleConfig struct {
	IncludeNames []string `json:"include_names"`
	IncludeRanks []int    `json:"include_ranks"`
	ExcludeNames []string `json:"exclude_names"`
}

// ParseSectionRuleConfig decodes a stored section document. Malformed JSON
// yields nil, which matches no members.
func ParseSectionRuleConfig(raw *string) *SectionRuleConfig {
	if raw == nil || *raw == "" {
		return nil
	}
	var cfg SectionRuleConfig
	if err := json.Unmarshal([]byte(*raw), &cfg); err != nil {
		return nil
	}
	return &cfg
}
