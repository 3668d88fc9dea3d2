package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"club-management-system/models"
	"club-management-system/repository"
	"club-management-system/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// RevenueReportRow is one tournament's contribution to the revenue report.
type RevenueReportRow struct {
	TournamentID     uint                    `json:"tournament_id"`
	Location         string                  `json:"location"`
	Status           models.TournamentStatus `json:"status"`
	EntryFee         float64                 `json:"entry_fee"`
	ParticipantCount int64                   `json:"participant_count"`
	Revenue          float64                 `json:"revenue"`
}

// RevenueReport lists every tournament's revenue; Total covers COMPLETED
// tournaments only.
type RevenueReport struct {
	Rows  []RevenueReportRow `json:"rows"`
	Total float64            `json:"total"`
}

// ParticipationReportRow is one member's participation summary.
type ParticipationReportRow struct {
	MemberID          uint                    `json:"member_id"`
	Name              string                  `json:"name"`
	Status            models.MembershipStatus `json:"status"`
	TournamentsPlayed int                     `json:"tournaments_played"`
	TotalWinnings     float64                 `json:"total_winnings"`
}

// ReportService assembles the aggregate reports and exports them as CSV to
// object storage.
type ReportService struct {
	tournaments repository.TournamentRepository
	members     repository.MemberRepository
}

func NewReportService(tournaments repository.TournamentRepository, members repository.MemberRepository) *ReportService {
	return &ReportService{tournaments: tournaments, members: members}
}

func (s *ReportService) RevenueReport(ctx context.Context) (*RevenueReport, error) {
	tournaments, err := s.tournaments.List(ctx)
	if err != nil {
		return nil, err
	}
	report := &RevenueReport{Rows: make([]RevenueReportRow, 0, len(tournaments))}
	for _, t := range tournaments {
		revenue := t.EntryFee * float64(t.ParticipantCount)
		report.Rows = append(report.Rows, RevenueReportRow{
			TournamentID:     t.ID,
			Location:         t.Location,
			Status:           t.Status,
			EntryFee:         t.EntryFee,
			ParticipantCount: t.ParticipantCount,
			Revenue:          revenue,
		})
		if t.Status == models.TournamentCompleted {
			report.Total += revenue
		}
	}
	return report, nil
}

func (s *ReportService) ParticipationReport(ctx context.Context) ([]ParticipationReportRow, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ParticipationReportRow, 0, len(members))
	for _, m := range members {
		rows = append(rows, ParticipationReportRow{
			MemberID:          m.ID,
			Name:              m.Name,
			Status:            m.Status,
			TournamentsPlayed: m.TotalTournamentsPlayed,
			TotalWinnings:     m.TotalWinnings,
		})
	}
	return rows, nil
}

// ExportRevenueCSV renders the revenue report as CSV and uploads it to R2,
// returning the public URL.
func (s *ReportService) ExportRevenueCSV(ctx context.Context) (string, error) {
	report, err := s.RevenueReport(ctx)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"tournament_id", "location", "status", "entry_fee", "participant_count", "revenue"})
	for _, row := range report.Rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(row.TournamentID), 10),
			row.Location,
			string(row.Status),
			strconv.FormatFloat(row.EntryFee, 'f', 2, 64),
			strconv.FormatInt(row.ParticipantCount, 10),
			strconv.FormatFloat(row.Revenue, 'f', 2, 64),
		})
	}
	_ = w.Write([]string{"", "", "", "", "total_completed", strconv.FormatFloat(report.Total, 'f', 2, 64)})
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("reports/%s-%s.csv", slug.Make("revenue report"), uuid.NewString())
	return utils.UploadBytesToR2(buf.Bytes(), key, "text/csv")
}

// ExportParticipationCSV renders the participation report as CSV and uploads
// it to R2, returning the public URL.
func (s *ReportService) ExportParticipationCSV(ctx context.Context) (string, error) {
	rows, err := s.ParticipationReport(ctx)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"member_id", "name", "status", "tournaments_played", "total_winnings"})
	for _, row := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(row.MemberID), 10),
			row.Name,
			string(row.Status),
			strconv.Itoa(row.TournamentsPlayed),
			strconv.FormatFloat(row.TotalWinnings, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("reports/%s-%s.csv", slug.Make("participation report"), uuid.NewString())
	return utils.UploadBytesToR2(buf.Bytes(), key, "text/csv")
}
