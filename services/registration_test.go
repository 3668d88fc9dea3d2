package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"club-management-system/apperrors"
	"club-management-system/models"
	"club-management-system/repository"
)

type registrationEnv struct {
	members     *MemberRegistry
	tournaments *TournamentRegistry
	engine      *RegistrationEngine
	memberRepo  *repository.MemoryMemberRepository
}

func newRegistrationEnv() *registrationEnv {
	memberRepo := repository.NewMemoryMemberRepository()
	tournamentRepo := repository.NewMemoryTournamentRepository(memberRepo)
	return &registrationEnv{
		members:     NewMemberRegistry(memberRepo),
		tournaments: NewTournamentRegistry(tournamentRepo),
		engine:      NewRegistrationEngine(tournamentRepo, memberRepo),
		memberRepo:  memberRepo,
	}
}

func (env *registrationEnv) seedMember(t *testing.T, n int) *models.Member {
	t.Helper()
	m := validMember()
	m.Email = fmt.Sprintf("player%d@club.org", n)
	m.Phone = fmt.Sprintf("555-000-%04d", n)
	created, err := env.members.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("seed member %d: %v", n, err)
	}
	return created
}

func (env *registrationEnv) seedTournament(t *testing.T, min, max int, fee float64) *models.Tournament {
	t.Helper()
	tr := validTournament()
	tr.MinimumParticipants = min
	tr.MaximumParticipants = max
	tr.EntryFee = fee
	created, err := env.tournaments.Create(context.Background(), tr)
	if err != nil {
		t.Fatalf("seed tournament: %v", err)
	}
	return created
}

func TestAddParticipant(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	m := env.seedMember(t, 1)
	tr := env.seedTournament(t, 2, 16, 50)

	got, err := env.engine.AddParticipant(ctx, tr.ID, m.ID)
	if err != nil {
		t.Fatalf("AddParticipant: %v", err)
	}
	if got.ParticipantCount != 1 {
		t.Errorf("participant count = %d, want 1", got.ParticipantCount)
	}

	// Re-adding is a no-op, not an error.
	got, err = env.engine.AddParticipant(ctx, tr.ID, m.ID)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if got.ParticipantCount != 1 {
		t.Errorf("participant count after re-add = %d, want 1", got.ParticipantCount)
	}

	if _, err := env.engine.AddParticipant(ctx, 999, m.ID); !errors.Is(err, apperrors.ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound, got %v", err)
	}
	if _, err := env.engine.AddParticipant(ctx, tr.ID, 999); !errors.Is(err, apperrors.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestAddParticipantRejectsIneligibleMember(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	m := env.seedMember(t, 1)
	tr := env.seedTournament(t, 2, 16, 50)

	if err := env.members.SetStatus(ctx, m.ID, models.MemberSuspended); err != nil {
		t.Fatalf("suspend member: %v", err)
	}
	if _, err := env.engine.AddParticipant(ctx, tr.ID, m.ID); !errors.Is(err, apperrors.ErrMemberNotEligible) {
		t.Errorf("expected ErrMemberNotEligible, got %v", err)
	}
}

func TestAddParticipantCapacityCheckedBeforeEligibility(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	tr := env.seedTournament(t, 2, 2, 50)
	for i := 1; i <= 2; i++ {
		m := env.seedMember(t, i)
		if _, err := env.engine.AddParticipant(ctx, tr.ID, m.ID); err != nil {
			t.Fatalf("fill slot %d: %v", i, err)
		}
	}

	// The third member is suspended too, but the capacity guard fires first.
	third := env.seedMember(t, 3)
	if err := env.members.SetStatus(ctx, third.ID, models.MemberSuspended); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	if _, err := env.engine.AddParticipant(ctx, tr.ID, third.ID); !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestRemoveParticipant(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	m := env.seedMember(t, 1)
	tr := env.seedTournament(t, 2, 16, 50)

	if _, err := env.engine.AddParticipant(ctx, tr.ID, m.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := env.engine.RemoveParticipant(ctx, tr.ID, m.ID)
	if err != nil {
		t.Fatalf("RemoveParticipant: %v", err)
	}
	if got.ParticipantCount != 0 {
		t.Errorf("participant count = %d, want 0", got.ParticipantCount)
	}

	// Removing a member who never joined is fine.
	if _, err := env.engine.RemoveParticipant(ctx, tr.ID, m.ID); err != nil {
		t.Errorf("remove non-participant: %v", err)
	}

	if _, err := env.engine.RemoveParticipant(ctx, tr.ID, 999); !errors.Is(err, apperrors.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestTransitionStatus(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	tr := env.seedTournament(t, 2, 16, 50)

	// Missing tournament is a silent no-op.
	if err := env.engine.TransitionStatus(ctx, 999, models.TournamentCancelled); err != nil {
		t.Errorf("missing id: %v", err)
	}

	if err := env.engine.TransitionStatus(ctx, tr.ID, "BOGUS"); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	// Not enough participants to start.
	m := env.seedMember(t, 1)
	if _, err := env.engine.AddParticipant(ctx, tr.ID, m.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentInProgress)
	if !errors.Is(err, apperrors.ErrInsufficientParticipants) {
		t.Errorf("expected ErrInsufficientParticipants, got %v", err)
	}

	if err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	got, _ := env.tournaments.Get(ctx, tr.ID)
	if got.Status != models.TournamentCancelled {
		t.Errorf("status = %s, want CANCELLED", got.Status)
	}
}

func TestCompletionIncrementsCountersOnce(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	tr := env.seedTournament(t, 2, 16, 50)
	first := env.seedMember(t, 1)
	second := env.seedMember(t, 2)
	for _, m := range []*models.Member{first, second} {
		if _, err := env.engine.AddParticipant(ctx, tr.ID, m.ID); err != nil {
			t.Fatalf("add member %d: %v", m.ID, err)
		}
	}

	if err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	for _, id := range []uint{first.ID, second.ID} {
		m, err := env.members.Get(ctx, id)
		if err != nil {
			t.Fatalf("get member %d: %v", id, err)
		}
		if m.TotalTournamentsPlayed != 1 {
			t.Errorf("member %d played = %d, want 1", id, m.TotalTournamentsPlayed)
		}
	}

	// COMPLETED -> COMPLETED is a no-op: the fan-out must not run again.
	if err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentCompleted); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	m, _ := env.members.Get(ctx, first.ID)
	if m.TotalTournamentsPlayed != 1 {
		t.Errorf("played after re-complete = %d, want 1", m.TotalTournamentsPlayed)
	}

	// COMPLETED is terminal for every other status.
	for _, next := range []models.TournamentStatus{
		models.TournamentScheduled,
		models.TournamentInProgress,
		models.TournamentCancelled,
	} {
		err := env.engine.TransitionStatus(ctx, tr.ID, next)
		if !errors.Is(err, apperrors.ErrIllegalStatusTransition) {
			t.Errorf("COMPLETED -> %s: got %v, want ErrIllegalStatusTransition", next, err)
		}
	}
}

// Full lifecycle: fill a two-slot tournament, run it to completion and check
// the revenue and member counters along the way.
func TestTournamentLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newRegistrationEnv()

	tr := env.seedTournament(t, 2, 2, 50)
	first := env.seedMember(t, 1)
	second := env.seedMember(t, 2)

	if _, err := env.engine.AddParticipant(ctx, tr.ID, first.ID); err != nil {
		t.Fatalf("add first: %v", err)
	}
	if _, err := env.engine.AddParticipant(ctx, tr.ID, second.ID); err != nil {
		t.Fatalf("add second: %v", err)
	}

	third := env.seedMember(t, 3)
	if _, err := env.engine.AddParticipant(ctx, tr.ID, third.ID); !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded for third member, got %v", err)
	}

	if err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentInProgress); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	revenue, err := env.tournaments.Revenue(ctx, tr.ID)
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	if revenue != 100 {
		t.Errorf("revenue = %v, want 100", revenue)
	}
	total, err := env.tournaments.TotalRevenue(ctx)
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if total != 100 {
		t.Errorf("total revenue = %v, want 100", total)
	}

	for _, id := range []uint{first.ID, second.ID} {
		m, _ := env.members.Get(ctx, id)
		if m.TotalTournamentsPlayed != 1 {
			t.Errorf("member %d played = %d, want 1", id, m.TotalTournamentsPlayed)
		}
	}
	m, _ := env.members.Get(ctx, third.ID)
	if m.TotalTournamentsPlayed != 0 {
		t.Errorf("third member played = %d, want 0", m.TotalTournamentsPlayed)
	}

	if err := env.engine.TransitionStatus(ctx, tr.ID, models.TournamentScheduled); !errors.Is(err, apperrors.ErrIllegalStatusTransition) {
		t.Errorf("expected ErrIllegalStatusTransition after completion, got %v", err)
	}
}
