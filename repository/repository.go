package repository

import (
	"context"
	"time"

	"club-management-system/models"
)

// MemberRepository is durable storage for member records.
//
// Update implementations compare the record's Version against the stored one
// and fail with apperrors.ErrVersionConflict when it has advanced.
type MemberRepository interface {
	Create(ctx context.Context, m *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetByPhone(ctx context.Context, phone string) (*models.Member, error)
	Update(ctx context.Context, m *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Member, error)

	SearchByName(ctx context.Context, name string) ([]models.Member, error)
	SearchByPhone(ctx context.Context, phone string) ([]models.Member, error)
	ListByStatus(ctx context.Context, status models.MembershipStatus) ([]models.Member, error)
	ListByMinTournaments(ctx context.Context, count int) ([]models.Member, error)
	ListActive(ctx context.Context, now time.Time) ([]models.Member, error)
	ListByTournamentStartDate(ctx context.Context, date time.Time) ([]models.Member, error)
}

// TournamentRepository is durable storage for tournament records and the
// participation relation joining them to members.
type TournamentRepository interface {
	Create(ctx context.Context, t *models.Tournament) error
	GetByID(ctx context.Context, id uint) (*models.Tournament, error)
	Update(ctx context.Context, t *models.Tournament) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Tournament, error)

	SearchByLocation(ctx context.Context, location string) ([]models.Tournament, error)
	ListByStatus(ctx context.Context, status models.TournamentStatus) ([]models.Tournament, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Tournament, error)
	ListCurrent(ctx context.Context, now time.Time) ([]models.Tournament, error)
	ListByMaxEntryFee(ctx context.Context, maxFee float64) ([]models.Tournament, error)
	ListByMinPrize(ctx context.Context, minPrize float64) ([]models.Tournament, error)
	ListWithAtLeast(ctx context.Context, minCount int) ([]models.Tournament, error)
	ListAvailable(ctx context.Context) ([]models.Tournament, error)

	AddParticipant(ctx context.Context, tournamentID, memberID uint) error
	RemoveParticipant(ctx context.Context, tournamentID, memberID uint) error
	HasParticipant(ctx context.Context, tournamentID, memberID uint) (bool, error)
	Participants(ctx context.Context, tournamentID uint) ([]models.Member, error)
	ParticipantCount(ctx context.Context, tournamentID uint) (int64, error)

	// TotalCompletedRevenue sums entry_fee x participant count over COMPLETED
	// tournaments only.
	TotalCompletedRevenue(ctx context.Context) (float64, error)
}
