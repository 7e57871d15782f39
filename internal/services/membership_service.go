package services

import (
	"context"

	"factionhq/quartermaster/internal/constants"
	"factionhq/quartermaster/internal/db/repositories"
	"factionhq/quartermaster/internal/models/dtos"
	models "factionhq/quartermaster/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService handles the single-membership paths: add, title edit,
// transfer, and explicit removal. Unlike the bulk sync applier, the add and
// transfer paths enforce the one-primary-assignment invariant before insert.
type MembershipService struct {
	membershipRepo *repositories.MembershipRepository
	categoryRepo   *repositories.CategoryRepository
}

func NewMembershipService(membershipRepo *repositories.MembershipRepository, categoryRepo *repositories.CategoryRepository) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		categoryRepo:   categoryRepo,
	}
}

// Add creates one human-added membership. Adding to a non-secondary category
// fails with InvariantViolation when the character already holds a primary
// assignment anywhere in the faction.
func (s *MembershipService) Add(ctx context.Context, actor, factionID, categoryType, categoryID string, req dtos.AddMemberRequest) (*models.Membership, error) {
	cat, err := s.categoryRepo.Get(ctx, factionID, categoryType, categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewDomainError(constants.ErrCodeCategoryNotFound)
		}
		return nil, err
	}

	if !cat.Secondary {
		hasPrimary, err := s.membershipRepo.HasPrimary(ctx, factionID, req.CharacterID)
		if err != nil {
			return nil, err
		}
		if hasPrimary {
			return nil, NewDomainError(constants.ErrCodeInvariantViolation)
		}
	}

	m := &models.Membership{
		ID:           uuid.NewString(),
		FactionID:    factionID,
		CategoryType: categoryType,
		CategoryID:   categoryID,
		CharacterID:  req.CharacterID,
		Title:        req.Title,
		Secondary:    cat.Secondary,
		Manual:       true,
		CreatedBy:    actor,
	}

	if err := s.membershipRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// EditTitle updates a membership's title. Last write wins; there is no
// optimistic-concurrency check on membership edits.
func (s *MembershipService) EditTitle(ctx context.Context, factionID, membershipID string, title *string) (*models.Membership, error) {
	m, err := s.getOwned(ctx, factionID, membershipID)
	if err != nil {
		return nil, err
	}

	m.Title = title
	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Transfer moves a membership to another category. Moving into a
// non-secondary category re-checks the primary invariant against every other
// membership the character holds.
func (s *MembershipService) Transfer(ctx context.Context, factionID, membershipID string, req dtos.TransferMembershipRequest) (*models.Membership, error) {
	m, err := s.getOwned(ctx, factionID, membershipID)
	if err != nil {
		return nil, err
	}

	target, err := s.categoryRepo.Get(ctx, factionID, req.CategoryType, req.CategoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewDomainError(constants.ErrCodeCategoryNotFound)
		}
		return nil, err
	}

	if !target.Secondary {
		primaries, err := s.membershipRepo.GetPrimariesByCharacter(ctx, factionID, m.CharacterID)
		if err != nil {
			return nil, err
		}
		for _, p := range primaries {
			if p.ID != m.ID {
				return nil, NewDomainError(constants.ErrCodeInvariantViolation)
			}
		}
	}

	m.CategoryType = target.Type
	m.CategoryID = target.ID
	m.Secondary = target.Secondary
	if err := s.membershipRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Remove deletes one membership explicitly, manual or not.
func (s *MembershipService) Remove(ctx context.Context, factionID, membershipID string) error {
	m, err := s.getOwned(ctx, factionID, membershipID)
	if err != nil {
		return err
	}
	return s.membershipRepo.Delete(ctx, m.ID)
}

func (s *MembershipService) getOwned(ctx context.Context, factionID, membershipID string) (*models.Membership, error) {
	m, err := s.membershipRepo.GetByID(ctx, membershipID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, NewDomainError(constants.ErrCodeMembershipNotFound)
		}
		return nil, err
	}
	if m.FactionID != factionID {
		return nil, NewDomainError(constants.ErrCodeMembershipNotFound)
	}
	return m, nil
}
