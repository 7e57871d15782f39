package services

import (
	"testing"

	"factionhq/quartermaster/internal/models/dtos"
)

func rules(id string, order int, cfg *dtos.SectionRuleConfig) SectionRules {
	return SectionRules{ID: id, Order: order, Rules: cfg}
}

func TestClassifySections_FirstMatchWins(t *testing.T) {
	members := []dtos.RosterMember{
		member(1, "John Doe", 3),
	}

	sections := []SectionRules{
		rules("command", 1, &dtos.SectionRuleConfig{IncludeRanks: []int{3}}),
		rules("patrol", 2, &dtos.SectionRuleConfig{IncludeRanks: []int{3}}),
	}

	got := ClassifySections(members, sections)

	if len(got["command"]) != 1 || got["command"][0] != 1 {
		t.Errorf("Expected member 1 in command, got %v", got["command"])
	}
	if len(got["patrol"]) != 0 {
		t.Errorf("Expected patrol empty, got %v", got["patrol"])
	}
}

func TestClassifySections_OrderNotSliceIndex(t *testing.T) {
	members := []dtos.RosterMember{
		member(1, "John Doe", 3),
	}

	// Declared out of order; ascending sort_order must win.
	sections := []SectionRules{
		rules("patrol", 5, &dtos.SectionRuleConfig{IncludeRanks: []int{3}}),
		rules("command", 1, &dtos.SectionRuleConfig{IncludeRanks: []int{3}}),
	}

	got := ClassifySections(members, sections)
	if len(got["command"]) != 1 {
		t.Errorf("Expected lower-order section to win, got %v", got)
	}
}

func TestClassifySections_ExcludedMatchKeepsScanning(t *testing.T) {
	members := []dtos.RosterMember{
		member(1, "John Doe", 3),
	}

	sections := []SectionRules{
		rules("command", 1, &dtos.SectionRuleConfig{
			IncludeRanks: []int{3},
			ExcludeNames: []string{"John_Doe"},
		}),
		rules("patrol", 2, &dtos.SectionRuleConfig{IncludeRanks: []int{3}}),
	}

	got := ClassifySections(members, sections)
	if len(got["command"]) != 0 {
		t.Errorf("Expected command empty, got %v", got["command"])
	}
	if len(got["patrol"]) != 1 || got["patrol"][0] != 1 {
		t.Errorf("Expected member 1 to fall through to patrol, got %v", got["patrol"])
	}
}

func TestClassifySections_IncludeNamesNormalized(t *testing.T) {
	members := []dtos.RosterMember{
		member(1, "John Doe", 3),
	}

	sections := []SectionRules{
		rules("named", 1, &dtos.SectionRuleConfig{IncludeNames: []string{"john_doe"}}),
	}

	got := ClassifySections(members, sections)
	if len(got["named"]) != 1 {
		t.Errorf("Expected underscore rule to match spaced name, got %v", got["named"])
	}
}

func TestClassifySections_NilRulesMatchNothing(t *testing.T) {
	members := []dtos.RosterMember{
		member(1, "John Doe", 3),
	}

	sections := []SectionRules{
		rules("broken", 1, nil),
	}

	got := ClassifySections(members, sections)
	if len(got["broken"]) != 0 {
		t.Errorf("Expected nil rules to match nothing, got %v", got["broken"])
	}
}

func TestClassifySections_UnmatchedMemberUnassigned(t *testing.T) {
	members := []dtos.RosterMember{
		member(1, "John Doe", 3),
		member(2, "Jane Smith", 9),
	}

	sections := []SectionRules{
		rules("command", 1, &dtos.SectionRuleConfig{IncludeRanks: []int{3}}),
	}

	got := ClassifySections(members, sections)
	total := 0
	for _, ids := range got {
		total += len(ids)
	}
	if total != 1 {
		t.Errorf("Expected exactly one assignment, got %d", total)
	}
}
