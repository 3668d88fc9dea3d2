package services

import (
	"context"
	"errors"
	"time"

	"club-management-system/apperrors"
	"club-management-system/models"
	"club-management-system/repository"
	"club-management-system/utils"
)

// MemberRegistry validates and persists member records.
type MemberRegistry struct {
	members repository.MemberRepository
}

func NewMemberRegistry(members repository.MemberRepository) *MemberRegistry {
	return &MemberRegistry{members: members}
}

func (s *MemberRegistry) validateFields(m *models.Member) error {
	if !utils.IsValidName(m.Name) {
		return apperrors.NewValidationError("name", "must be 2-50 characters long and contain only letters")
	}
	if utils.IsBlank(m.Address) {
		return apperrors.NewValidationError("address", "is required")
	}
	if !utils.IsValidEmail(m.Email) {
		return apperrors.NewValidationError("email", "invalid email format")
	}
	if !utils.IsValidPhone(m.Phone) {
		return apperrors.NewValidationError("phone", "must be in format XXX-XXX-XXXX")
	}
	if m.StartDate.IsZero() {
		return apperrors.NewValidationError("start_date", "is required")
	}
	if m.StartDate.After(time.Now()) {
		return apperrors.NewValidationError("start_date", "cannot be in the future")
	}
	if m.DurationMonths < 1 || m.DurationMonths > 60 {
		return apperrors.NewValidationError("duration_months", "must be between 1 and 60 months")
	}
	return nil
}

// checkUniqueness fails when another member already holds the email or phone.
// excludeID skips the record's own row during updates.
func (s *MemberRegistry) checkUniqueness(ctx context.Context, m *models.Member, excludeID uint) error {
	if existing, err := s.members.GetByEmail(ctx, m.Email); err == nil {
		if existing.ID != excludeID {
			return apperrors.ErrDuplicateEmail
		}
	} else if !errors.Is(err, apperrors.ErrMemberNotFound) {
		return err
	}
	if existing, err := s.members.GetByPhone(ctx, m.Phone); err == nil {
		if existing.ID != excludeID {
			return apperrors.ErrDuplicatePhone
		}
	} else if !errors.Is(err, apperrors.ErrMemberNotFound) {
		return err
	}
	return nil
}

// Create validates the record, enforces email/phone uniqueness and stores it
// with status ACTIVE and zeroed counters.
func (s *MemberRegistry) Create(ctx context.Context, m *models.Member) (*models.Member, error) {
	if err := s.validateFields(m); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, m, 0); err != nil {
		return nil, err
	}
	m.Status = models.MemberActive
	m.TotalTournamentsPlayed = 0
	m.TotalWinnings = 0
	m.Version = 0
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemberRegistry) Get(ctx context.Context, id uint) (*models.Member, error) {
	return s.members.GetByID(ctx, id)
}

func (s *MemberRegistry) List(ctx context.Context) ([]models.Member, error) {
	return s.members.List(ctx)
}

// Update overwrites the identity and membership fields. Uniqueness is only
// re-checked when the email changed; a phone collision on an email-preserving
// update goes through unchecked, matching the legacy behavior.
func (s *MemberRegistry) Update(ctx context.Context, id uint, in *models.Member) (*models.Member, error) {
	existing, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateFields(in); err != nil {
		return nil, err
	}
	if existing.Email != in.Email {
		if err := s.checkUniqueness(ctx, in, id); err != nil {
			return nil, err
		}
	}
	existing.Name = in.Name
	existing.Address = in.Address
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.StartDate = in.StartDate
	existing.DurationMonths = in.DurationMonths
	if err := s.members.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *MemberRegistry) Delete(ctx context.Context, id uint) error {
	return s.members.Delete(ctx, id)
}

// SetStatus overwrites the membership status unconditionally. A missing id is
// a silent no-op.
func (s *MemberRegistry) SetStatus(ctx context.Context, id uint, status models.MembershipStatus) error {
	if !models.ValidMembershipStatus(status) {
		return apperrors.NewValidationError("status", "unknown membership status")
	}
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			return nil
		}
		return err
	}
	m.Status = status
	return s.members.Update(ctx, m)
}

func (s *MemberRegistry) SearchByName(ctx context.Context, name string) ([]models.Member, error) {
	return s.members.SearchByName(ctx, name)
}

func (s *MemberRegistry) SearchByPhone(ctx context.Context, phone string) ([]models.Member, error) {
	return s.members.SearchByPhone(ctx, phone)
}

func (s *MemberRegistry) ListByStatus(ctx context.Context, status models.MembershipStatus) ([]models.Member, error) {
	return s.members.ListByStatus(ctx, status)
}

// ListByMinTournaments returns members who played strictly more than count
// tournaments.
func (s *MemberRegistry) ListByMinTournaments(ctx context.Context, count int) ([]models.Member, error) {
	return s.members.ListByMinTournaments(ctx, count)
}

// ListActive returns ACTIVE members whose membership term is still running.
func (s *MemberRegistry) ListActive(ctx context.Context) ([]models.Member, error) {
	return s.members.ListActive(ctx, time.Now())
}

// ListByTournamentStartDate returns members registered for tournaments that
// start on the given day.
func (s *MemberRegistry) ListByTournamentStartDate(ctx context.Context, date time.Time) ([]models.Member, error) {
	return s.members.ListByTournamentStartDate(ctx, date)
}
