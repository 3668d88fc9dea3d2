package services

import (
	"context"
	"errors"

	"club-management-system/apperrors"
	"club-management-system/models"
	"club-management-system/repository"
)

// RegistrationEngine coordinates the two registries: joining and leaving
// tournaments, and tournament status transitions with their side effects on
// member statistics. It performs no retries; a version conflict surfaces to
// the caller.
type RegistrationEngine struct {
	tournaments repository.TournamentRepository
	members     repository.MemberRepository
}

func NewRegistrationEngine(tournaments repository.TournamentRepository, members repository.MemberRepository) *RegistrationEngine {
	return &RegistrationEngine{tournaments: tournaments, members: members}
}

// allowedTransition is the single source of truth for the status rules:
// COMPLETED is terminal, everything else may move freely (CANCELLED is
// reachable from SCHEDULED and IN_PROGRESS).
func allowedTransition(current, next models.TournamentStatus) bool {
	if current == models.TournamentCompleted {
		return next == models.TournamentCompleted
	}
	return true
}

// AddParticipant links a member to a tournament, guarding capacity and
// eligibility. Re-adding an already-linked member is a no-op.
func (e *RegistrationEngine) AddParticipant(ctx context.Context, tournamentID, memberID uint) (*models.Tournament, error) {
	t, err := e.tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	m, err := e.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	linked, err := e.tournaments.HasParticipant(ctx, tournamentID, memberID)
	if err != nil {
		return nil, err
	}
	if linked {
		return t, nil
	}

	count, err := e.tournaments.ParticipantCount(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if count >= int64(t.MaximumParticipants) {
		return nil, apperrors.ErrCapacityExceeded
	}
	if m.Status != models.MemberActive {
		return nil, apperrors.ErrMemberNotEligible
	}

	if err := e.tournaments.AddParticipant(ctx, tournamentID, memberID); err != nil {
		return nil, err
	}
	if err := e.tournaments.Update(ctx, t); err != nil {
		return nil, err
	}
	return e.tournaments.GetByID(ctx, tournamentID)
}

// RemoveParticipant unlinks a member unconditionally; there is no status or
// capacity check on the way out.
func (e *RegistrationEngine) RemoveParticipant(ctx context.Context, tournamentID, memberID uint) (*models.Tournament, error) {
	t, err := e.tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if _, err := e.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	if err := e.tournaments.RemoveParticipant(ctx, tournamentID, memberID); err != nil {
		return nil, err
	}
	if err := e.tournaments.Update(ctx, t); err != nil {
		return nil, err
	}
	return e.tournaments.GetByID(ctx, tournamentID)
}

// TransitionStatus moves a tournament to newStatus. A missing tournament is a
// silent no-op. Moving to COMPLETED increments every participant's played
// counter exactly once; COMPLETED -> COMPLETED returns early so the fan-out
// can never run twice.
func (e *RegistrationEngine) TransitionStatus(ctx context.Context, tournamentID uint, newStatus models.TournamentStatus) error {
	if !models.ValidTournamentStatus(newStatus) {
		return apperrors.NewValidationError("status", "unknown tournament status")
	}
	t, err := e.tournaments.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTournamentNotFound) {
			return nil
		}
		return err
	}

	if t.Status == models.TournamentCompleted && newStatus == models.TournamentCompleted {
		return nil
	}
	if !allowedTransition(t.Status, newStatus) {
		return apperrors.ErrIllegalStatusTransition
	}

	if newStatus == models.TournamentInProgress {
		count, err := e.tournaments.ParticipantCount(ctx, tournamentID)
		if err != nil {
			return err
		}
		if count < int64(t.MinimumParticipants) {
			return apperrors.ErrInsufficientParticipants
		}
	}

	t.Status = newStatus
	if err := e.tournaments.Update(ctx, t); err != nil {
		return err
	}

	if newStatus == models.TournamentCompleted {
		participants, err := e.tournaments.Participants(ctx, tournamentID)
		if err != nil {
			return err
		}
		for i := range participants {
			m := participants[i]
			m.TotalTournamentsPlayed++
			if err := e.members.Update(ctx, &m); err != nil {
				return err
			}
		}
	}
	return nil
}
