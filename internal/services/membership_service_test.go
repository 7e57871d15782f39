package services

import (
	"context"
	"testing"

	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/db/repositories"
	"factionhq/quartermaster/internal/models/dtos"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newMembershipService(db *gorm.DB) *MembershipService {
	return NewMembershipService(
		repositories.NewMembershipRepository(db),
		repositories.NewCategoryRepository(db),
	)
}

func TestMembershipAdd_Success(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	cat := seedCategory(t, db, faction.ID, nil, false)

	svc := newMembershipService(db)
	m, err := svc.Add(context.Background(), "actor-1", faction.ID, cat.Type, cat.ID, dtos.AddMemberRequest{CharacterID: 7})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !m.Manual {
		t.Error("Expected human-added membership flagged manual=true")
	}
	if m.Secondary {
		t.Error("Expected membership to inherit the category's primary nature")
	}
	if m.CreatedBy != "actor-1" {
		t.Errorf("Expected created_by actor-1, got %s", m.CreatedBy)
	}
}

func TestMembershipAdd_PrimaryInvariant(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	cat := seedCategory(t, db, faction.ID, nil, false)
	other := seedCategory(t, db, faction.ID, nil, false)

	seedMembership(t, db, faction.ID, other, 7, true)

	svc := newMembershipService(db)
	_, err := svc.Add(context.Background(), "actor-1", faction.ID, cat.Type, cat.ID, dtos.AddMemberRequest{CharacterID: 7})
	if err == nil {
		t.Fatal("Expected invariant violation")
	}
	if code := domainCode(t, err); code != constants.ErrCodeInvariantViolation {
		t.Errorf("Expected INVARIANT_VIOLATION, got %s", code)
	}
}

func TestMembershipAdd_SecondaryBypassesInvariant(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	detail := seedCategory(t, db, faction.ID, nil, true)
	unit := seedCategory(t, db, faction.ID, nil, false)

	seedMembership(t, db, faction.ID, unit, 7, true)

	svc := newMembershipService(db)
	m, err := svc.Add(context.Background(), "actor-1", faction.ID, detail.Type, detail.ID, dtos.AddMemberRequest{CharacterID: 7})
	if err != nil {
		t.Fatalf("Expected no error for secondary category, got %v", err)
	}
	if !m.Secondary {
		t.Error("Expected secondary membership")
	}
}

func TestMembershipTransfer_IntoPrimaryChecksInvariant(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	detail := seedCategory(t, db, faction.ID, nil, true)
	unitA := seedCategory(t, db, faction.ID, nil, false)
	unitB := seedCategory(t, db, faction.ID, nil, false)

	// Character 7 holds a primary in unit A and a secondary in the detail.
	seedMembership(t, db, faction.ID, unitA, 7, true)
	secondary := seedMembership(t, db, faction.ID, detail, 7, true)

	svc := newMembershipService(db)
	_, err := svc.Transfer(context.Background(), faction.ID, secondary.ID, dtos.TransferMembershipRequest{
		CategoryType: unitB.Type,
		CategoryID:   unitB.ID,
	})
	if err == nil {
		t.Fatal("Expected invariant violation on transfer into a primary slot")
	}
	if code := domainCode(t, err); code != constants.ErrCodeInvariantViolation {
		t.Errorf("Expected INVARIANT_VIOLATION, got %s", code)
	}
}

func TestMembershipTransfer_OwnPrimaryMoves(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	unitA := seedCategory(t, db, faction.ID, nil, false)
	unitB := seedCategory(t, db, faction.ID, nil, false)

	// The character's only primary is the one being moved; no conflict.
	m := seedMembership(t, db, faction.ID, unitA, 7, true)

	svc := newMembershipService(db)
	moved, err := svc.Transfer(context.Background(), faction.ID, m.ID, dtos.TransferMembershipRequest{
		CategoryType: unitB.Type,
		CategoryID:   unitB.ID,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if moved.CategoryID != unitB.ID {
		t.Errorf("Expected membership moved to unit B, got %s", moved.CategoryID)
	}
}

func TestMembershipEditTitle_LastWriteWins(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	cat := seedCategory(t, db, faction.ID, nil, false)
	m := seedMembership(t, db, faction.ID, cat, 7, true)

	svc := newMembershipService(db)

	first := "Squad Leader"
	second := "Watch Commander"
	if _, err := svc.EditTitle(context.Background(), faction.ID, m.ID, &first); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	updated, err := svc.EditTitle(context.Background(), faction.ID, m.ID, &second)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title == nil || *updated.Title != second {
		t.Errorf("Expected last title to win, got %v", updated.Title)
	}
}

func TestMembershipRemove_ManualAllowed(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	cat := seedCategory(t, db, faction.ID, nil, false)
	m := seedMembership(t, db, faction.ID, cat, 7, true)

	svc := newMembershipService(db)
	if err := svc.Remove(context.Background(), faction.ID, m.ID); err != nil {
		t.Fatalf("Expected explicit removal of a manual membership to succeed, got %v", err)
	}
}

func TestMembership_FactionScoping(t *testing.T) {
	db := setupTestDB(t)
	faction := seedFaction(t, db)
	cat := seedCategory(t, db, faction.ID, nil, false)
	m := seedMembership(t, db, faction.ID, cat, 7, true)

	svc := newMembershipService(db)
	_, err := svc.EditTitle(context.Background(), uuid.NewString(), m.ID, nil)
	if err == nil {
		t.Fatal("Expected error when editing through another faction")
	}
	if code := domainCode(t, err); code != constants.ErrCodeMembershipNotFound {
		t.Errorf("Expected MEMBERSHIP_NOT_FOUND, got %s", code)
	}
}
