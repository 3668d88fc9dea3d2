package services

import (
	"context"
	"testing"
	"time"

	"club-management-system/apperrors"
	"club-management-system/models"
	"club-management-system/repository"
)

func newTournamentEnv() (*TournamentRegistry, *repository.MemoryTournamentRepository, *repository.MemoryMemberRepository) {
	members := repository.NewMemoryMemberRepository()
	tournaments := repository.NewMemoryTournamentRepository(members)
	return NewTournamentRegistry(tournaments), tournaments, members
}

func validTournament() *models.Tournament {
	return &models.Tournament{
		Location:            "Pine Valley",
		StartDate:           time.Now().AddDate(0, 0, 7),
		EndDate:             time.Now().AddDate(0, 0, 9),
		EntryFee:            50,
		CashPrizeAmount:     1000,
		MinimumParticipants: 2,
		MaximumParticipants: 16,
	}
}

func TestTournamentCreate(t *testing.T) {
	ctx := context.Background()
	registry, _, _ := newTournamentEnv()

	in := validTournament()
	in.Status = models.TournamentInProgress

	created, err := registry.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if created.Status != models.TournamentScheduled {
		t.Errorf("status = %s, want SCHEDULED", created.Status)
	}
}

func TestTournamentCreateValidation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		mutate func(*models.Tournament)
	}{
		{"blank location", func(tr *models.Tournament) { tr.Location = " " }},
		{"missing dates", func(tr *models.Tournament) { tr.StartDate = time.Time{}; tr.EndDate = time.Time{} }},
		{"end before start", func(tr *models.Tournament) { tr.EndDate = tr.StartDate.AddDate(0, 0, -1) }},
		{"negative fee", func(tr *models.Tournament) { tr.EntryFee = -1 }},
		{"negative prize", func(tr *models.Tournament) { tr.CashPrizeAmount = -1 }},
		{"minimum below two", func(tr *models.Tournament) { tr.MinimumParticipants = 1 }},
		{"minimum above maximum", func(tr *models.Tournament) { tr.MinimumParticipants = 20; tr.MaximumParticipants = 10 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry, _, _ := newTournamentEnv()
			tr := validTournament()
			tc.mutate(tr)
			if _, err := registry.Create(ctx, tr); !apperrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestTournamentUpdatePreservesStatus(t *testing.T) {
	ctx := context.Background()
	registry, repo, _ := newTournamentEnv()

	created, err := registry.Create(ctx, validTournament())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	stored.Status = models.TournamentInProgress
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("force status: %v", err)
	}

	in := validTournament()
	in.Location = "Augusta"
	in.Status = models.TournamentCancelled
	updated, err := registry.Update(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Location != "Augusta" {
		t.Errorf("location = %s, want Augusta", updated.Location)
	}
	if updated.Status != models.TournamentInProgress {
		t.Errorf("status = %s, want IN_PROGRESS untouched", updated.Status)
	}
}

func TestTournamentRevenue(t *testing.T) {
	ctx := context.Background()
	registry, repo, members := newTournamentEnv()

	// Missing tournament yields zero, not an error.
	revenue, err := registry.Revenue(ctx, 999)
	if err != nil || revenue != 0 {
		t.Errorf("Revenue(missing) = %v, %v; want 0, nil", revenue, err)
	}

	created, err := registry.Create(ctx, validTournament())
	if err != nil {
		t.Fatalf("seed tournament: %v", err)
	}
	for _, email := range []string{"a@club.org", "b@club.org", "c@club.org"} {
		m := &models.Member{Name: "Player", Email: email, Status: models.MemberActive}
		if err := members.Create(ctx, m); err != nil {
			t.Fatalf("seed member: %v", err)
		}
		if err := repo.AddParticipant(ctx, created.ID, m.ID); err != nil {
			t.Fatalf("link member: %v", err)
		}
	}

	revenue, err = registry.Revenue(ctx, created.ID)
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	if revenue != 150 {
		t.Errorf("revenue = %v, want 150", revenue)
	}
}

func TestTournamentTotalRevenueCountsCompletedOnly(t *testing.T) {
	ctx := context.Background()
	registry, repo, members := newTournamentEnv()

	m := &models.Member{Name: "Player", Email: "p@club.org", Status: models.MemberActive}
	if err := members.Create(ctx, m); err != nil {
		t.Fatalf("seed member: %v", err)
	}

	completed, _ := registry.Create(ctx, validTournament())
	scheduled, _ := registry.Create(ctx, validTournament())
	_ = repo.AddParticipant(ctx, completed.ID, m.ID)
	_ = repo.AddParticipant(ctx, scheduled.ID, m.ID)

	stored, _ := repo.GetByID(ctx, completed.ID)
	stored.Status = models.TournamentCompleted
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("complete tournament: %v", err)
	}

	total, err := registry.TotalRevenue(ctx)
	if err != nil {
		t.Fatalf("TotalRevenue: %v", err)
	}
	if total != 50 {
		t.Errorf("total = %v, want 50 (completed tournament only)", total)
	}
}
