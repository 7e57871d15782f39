package services

import (
	"context"
	"fmt"
	"sort"

	"factionhq/quartermaster/internal/common"
	"factionhq/quartermaster/internal/db/repositories"
	"factionhq/quartermaster/internal/logging"
	"factionhq/quartermaster/internal/models/dtos"
)

// SectionRules pairs a section id with its parsed rule document.
type SectionRules struct {
	ID    string
	Order int
	Rules *dtos.SectionRuleConfig
}

// ClassifySections assigns each member to the first matching, non-excluded
// section by ascending order. A section matches when its include_names
// contains the member's name (or underscore-slug form) or its include_ranks
// contains the member's rank; a match is discarded when the name is also in
// that section's exclude_names and scanning continues with later sections.
// Members matching no section are left unassigned.
func ClassifySections(members []dtos.RosterMember, sections []SectionRules) map[string][]int {
	ordered := make([]SectionRules, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	assignment := make(map[string][]int, len(ordered))
	for _, s := range ordered {
		assignment[s.ID] = nil
	}

	for _, m := range members {
		for _, s := range ordered {
			if !sectionMatches(s.Rules, m) {
				continue
			}
			assignment[s.ID] = append(assignment[s.ID], m.CharacterID)
			break
		}
	}

	return assignment
}

func sectionMatches(rules *dtos.SectionRuleConfig, m dtos.RosterMember) bool {
	if rules == nil {
		return false
	}

	matched := false
	for _, entry := range rules.IncludeNames {
		if common.NamesMatch(entry, m.CharacterName) {
			matched = true
			break
		}
	}
	if !matched && containsInt(rules.IncludeRanks, m.Rank) {
		matched = true
	}
	if !matched {
		return false
	}

	for _, entry := range rules.ExcludeNames {
		if common.NamesMatch(entry, m.CharacterName) {
			return false
		}
	}
	return true
}

// SectionService runs the explicit auto-classification action for a roster.
type SectionService struct {
	rosterSvc  *RosterService
	rosterRepo *repositories.RosterRepository
}

func NewSectionService(rosterSvc *RosterService, rosterRepo *repositories.RosterRepository) *SectionService {
	return &SectionService{
		rosterSvc:  rosterSvc,
		rosterRepo: rosterRepo,
	}
}

// ClassifyRoster composes the roster's current filtered member list, runs
// the classifier over the roster's sections, and replaces every section's
// membership with the result. Never triggered implicitly.
func (s *SectionService) ClassifyRoster(ctx context.Context, token, factionID, rosterID string) (map[string][]int, error) {
	view, err := s.rosterSvc.ComposeRoster(ctx, token, factionID, rosterID, false)
	if err != nil {
		return nil, err
	}

	roster, err := s.rosterRepo.GetByID(ctx, factionID, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster sections: %w", err)
	}

	var (
		rules      []SectionRules
		sectionIDs []string
	)
	for _, sec := range roster.Sections {
		parsed := dtos.ParseSectionRuleConfig(sec.Config)
		if parsed == nil && sec.Config != nil && *sec.Config != "" {
			logging.Warn("Malformed section rule config, section will match nothing",
				"section_id", sec.ID, "roster_id", rosterID)
		}
		rules = append(rules, SectionRules{ID: sec.ID, Order: sec.Order, Rules: parsed})
		sectionIDs = append(sectionIDs, sec.ID)
	}

	assignment := ClassifySections(view.Members, rules)

	if err := s.rosterRepo.ReplaceSectionMembers(ctx, sectionIDs, assignment); err != nil {
		return nil, err
	}

	logging.Info("Roster sections classified",
		"roster_id", rosterID,
		"sections", len(sectionIDs),
		"members", len(view.Members),
	)

	return assignment, nil
}
