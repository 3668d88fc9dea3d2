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

// TournamentRegistry validates and persists tournament records and answers
// the aggregate revenue queries.
type TournamentRegistry struct {
	tournaments repository.TournamentRepository
}

func NewTournamentRegistry(tournaments repository.TournamentRepository) *TournamentRegistry {
	return &TournamentRegistry{tournaments: tournaments}
}

func (s *TournamentRegistry) validateFields(t *models.Tournament) error {
	if utils.IsBlank(t.Location) {
		return apperrors.NewValidationError("location", "is required")
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return apperrors.NewValidationError("start_date", "start and end dates are required")
	}
	if t.EndDate.Before(t.StartDate) {
		return apperrors.NewValidationError("end_date", "cannot be before start date")
	}
	if t.EntryFee < 0 {
		return apperrors.NewValidationError("entry_fee", "cannot be negative")
	}
	if t.CashPrizeAmount < 0 {
		return apperrors.NewValidationError("cash_prize_amount", "cannot be negative")
	}
	if t.MinimumParticipants < 2 {
		return apperrors.NewValidationError("minimum_participants", "must be at least 2")
	}
	if t.MinimumParticipants > t.MaximumParticipants {
		return apperrors.NewValidationError("minimum_participants", "cannot be greater than maximum")
	}
	return nil
}

// Create validates the record and stores it with status SCHEDULED.
func (s *TournamentRegistry) Create(ctx context.Context, t *models.Tournament) (*models.Tournament, error) {
	if err := s.validateFields(t); err != nil {
		return nil, err
	}
	t.Status = models.TournamentScheduled
	t.Version = 0
	if err := s.tournaments.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TournamentRegistry) Get(ctx context.Context, id uint) (*models.Tournament, error) {
	return s.tournaments.GetByID(ctx, id)
}

func (s *TournamentRegistry) List(ctx context.Context) ([]models.Tournament, error) {
	return s.tournaments.List(ctx)
}

// Update re-validates the incoming fields against the same invariants and
// overwrites everything except status and the participant list.
func (s *TournamentRegistry) Update(ctx context.Context, id uint, in *models.Tournament) (*models.Tournament, error) {
	existing, err := s.tournaments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateFields(in); err != nil {
		return nil, err
	}
	existing.Location = in.Location
	existing.StartDate = in.StartDate
	existing.EndDate = in.EndDate
	existing.EntryFee = in.EntryFee
	existing.CashPrizeAmount = in.CashPrizeAmount
	existing.MinimumParticipants = in.MinimumParticipants
	existing.MaximumParticipants = in.MaximumParticipants
	if err := s.tournaments.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *TournamentRegistry) Delete(ctx context.Context, id uint) error {
	return s.tournaments.Delete(ctx, id)
}

func (s *TournamentRegistry) SearchByLocation(ctx context.Context, location string) ([]models.Tournament, error) {
	return s.tournaments.SearchByLocation(ctx, location)
}

func (s *TournamentRegistry) ListByStatus(ctx context.Context, status models.TournamentStatus) ([]models.Tournament, error) {
	return s.tournaments.ListByStatus(ctx, status)
}

// ListByDateRange returns tournaments whose start date falls within
// [from, to] inclusive.
func (s *TournamentRegistry) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Tournament, error) {
	return s.tournaments.ListByDateRange(ctx, from, to)
}

// ListCurrent returns tournaments running today.
func (s *TournamentRegistry) ListCurrent(ctx context.Context) ([]models.Tournament, error) {
	return s.tournaments.ListCurrent(ctx, time.Now())
}

func (s *TournamentRegistry) ListByMaxEntryFee(ctx context.Context, maxFee float64) ([]models.Tournament, error) {
	return s.tournaments.ListByMaxEntryFee(ctx, maxFee)
}

func (s *TournamentRegistry) ListByMinPrize(ctx context.Context, minPrize float64) ([]models.Tournament, error) {
	return s.tournaments.ListByMinPrize(ctx, minPrize)
}

func (s *TournamentRegistry) ListWithAtLeast(ctx context.Context, minCount int) ([]models.Tournament, error) {
	return s.tournaments.ListWithAtLeast(ctx, minCount)
}

// ListAvailable returns tournaments with open slots.
func (s *TournamentRegistry) ListAvailable(ctx context.Context) ([]models.Tournament, error) {
	return s.tournaments.ListAvailable(ctx)
}

// Revenue is entry fee times current participant count; a missing tournament
// yields 0.
func (s *TournamentRegistry) Revenue(ctx context.Context, id uint) (float64, error) {
	t, err := s.tournaments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			return 0, nil
		}
		return 0, err
	}
	count, err := s.tournaments.ParticipantCount(ctx, id)
	if err != nil {
		return 0, err
	}
	return t.EntryFee * float64(count), nil
}

// TotalRevenue sums revenue over COMPLETED tournaments only.
func (s *TournamentRegistry) TotalRevenue(ctx context.Context) (float64, error) {
	return s.tournaments.TotalCompletedRevenue(ctx)
}
