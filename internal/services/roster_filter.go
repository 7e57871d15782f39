package services

import (
	"sort"
	"strings"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/models/dtos"
)

// ForumResolution holds the username sets resolved from the forum API for
// one composition. Keys are normalized usernames; values keep the original
// display form for diagnostics.
type ForumResolution struct {
	Include map[string]string
	Exclude map[string]string

	// GroupsByName maps normalized usernames to the forum group ids they
	// appeared in. Display decoration only, never used for filtering.
	GroupsByName map[string][]int

	// Active is set when the filter config referenced forum groups or users
	// and the faction has a forum endpoint configured.
	Active bool
}

// NewForumResolution returns an empty, active resolution ready to be filled.
func NewForumResolution() *ForumResolution {
	return &ForumResolution{
		Include:      make(map[string]string),
		Exclude:      make(map[string]string),
		GroupsByName: make(map[string][]int),
		Active:       true,
	}
}

// FilterMembers applies the roster's declarative rule set to the merged
// member list. Evaluation is ordered short-circuit per member: a member is
// dropped by the first rule that excludes them.
func FilterMembers(members []dtos.RosterMember, cfg *dtos.RosterFilterConfig, forum *ForumResolution) []dtos.RosterMember {
	if cfg == nil {
		return members
	}

	forumActive := forum != nil && forum.Active

	kept := make([]dtos.RosterMember, 0, len(members))
	for _, m := range members {
		name := common.NormalizeName(m.CharacterName)

		if len(cfg.IncludeRanks) > 0 && !containsInt(cfg.IncludeRanks, m.Rank) {
			continue
		}
		if containsInt(cfg.ExcludeRanks, m.Rank) {
			continue
		}
		if len(cfg.IncludeMembers) > 0 && !anySubstring(cfg.IncludeMembers, name) {
			continue
		}
		if anySubstring(cfg.ExcludeMembers, name) {
			continue
		}
		if forumActive {
			if _, excluded := forum.Exclude[name]; excluded {
				continue
			}
			if len(forum.Include) > 0 {
				if _, included := forum.Include[name]; !included {
					continue
				}
			}
		}

		kept = append(kept, m)
	}

	return kept
}

// MissingForumUsers returns expected forum usernames with no corresponding
// character in the faction roster at all. A data-quality diagnostic computed
// against the full roster, independent of rank and name filters.
func MissingForumUsers(members []dtos.RosterMember, forum *ForumResolution) []string {
	if forum == nil || !forum.Active {
		return nil
	}

	present := make(map[string]bool, len(members))
	for _, m := range members {
		present[common.NormalizeName(m.CharacterName)] = true
	}

	var missing []string
	for norm, display := range forum.Include {
		if _, excluded := forum.Exclude[norm]; excluded {
			continue
		}
		if !present[norm] {
			missing = append(missing, display)
		}
	}

	sort.Strings(missing)
	return missing
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// anySubstring reports whether any configured entry is a substring of the
// normalized name. Entries are normalized the same way, so underscores and
// case differences don't defeat the match.
func anySubstring(entries []string, normalizedName string) bool {
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if strings.Contains(normalizedName, common.NormalizeName(entry)) {
			return true
		}
	}
	return false
}
