package services

import (
	"context"
	"testing"

	"club-management-system/models"
	"club-management-system/repository"
)

func TestRevenueReport(t *testing.T) {
	ctx := context.Background()
	memberRepo := repository.NewMemoryMemberRepository()
	tournamentRepo := repository.NewMemoryTournamentRepository(memberRepo)
	reports := NewReportService(tournamentRepo, memberRepo)

	m := validMember()
	m.Status = models.MemberActive
	if err := memberRepo.Create(ctx, m); err != nil {
		t.Fatalf("seed member: %v", err)
	}

	done := validTournament()
	done.Status = models.TournamentCompleted
	if err := tournamentRepo.Create(ctx, done); err != nil {
		t.Fatalf("seed completed: %v", err)
	}
	open := validTournament()
	open.Status = models.TournamentScheduled
	if err := tournamentRepo.Create(ctx, open); err != nil {
		t.Fatalf("seed scheduled: %v", err)
	}
	_ = tournamentRepo.AddParticipant(ctx, done.ID, m.ID)
	_ = tournamentRepo.AddParticipant(ctx, open.ID, m.ID)

	report, err := reports.RevenueReport(ctx)
	if err != nil {
		t.Fatalf("RevenueReport: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(report.Rows))
	}
	for _, row := range report.Rows {
		if row.Revenue != 50 {
			t.Errorf("tournament %d revenue = %v, want 50", row.TournamentID, row.Revenue)
		}
	}
	if report.Total != 50 {
		t.Errorf("total = %v, want 50 (completed tournament only)", report.Total)
	}
}

func TestParticipationReport(t *testing.T) {
	ctx := context.Background()
	memberRepo := repository.NewMemoryMemberRepository()
	tournamentRepo := repository.NewMemoryTournamentRepository(memberRepo)
	reports := NewReportService(tournamentRepo, memberRepo)

	m := validMember()
	m.Status = models.MemberActive
	m.TotalTournamentsPlayed = 4
	m.TotalWinnings = 250
	if err := memberRepo.Create(ctx, m); err != nil {
		t.Fatalf("seed member: %v", err)
	}

	rows, err := reports.ParticipationReport(ctx)
	if err != nil {
		t.Fatalf("ParticipationReport: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.MemberID != m.ID || row.TournamentsPlayed != 4 || row.TotalWinnings != 250 {
		t.Errorf("row = %+v", row)
	}
}
