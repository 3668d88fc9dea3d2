package models

import (
	"time"
)

// TournamentStatus is the lifecycle state of a tournament.
type TournamentStatus string

const (
	TournamentScheduled  TournamentStatus = "SCHEDULED"
	TournamentInProgress TournamentStatus = "IN_PROGRESS"
	TournamentCompleted  TournamentStatus = "COMPLETED"
	TournamentCancelled  TournamentStatus = "CANCELLED"
)

// ValidTournamentStatus reports whether s is one of the known statuses.
func ValidTournamentStatus(s TournamentStatus) bool {
	switch s {
	case TournamentScheduled, TournamentInProgress, TournamentCompleted, TournamentCancelled:
		return true
	}
	return false
}

// Tournament is an event with a capacity range, fee/prize and a lifecycle status.
type Tournament struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Location        string    `json:"location" gorm:"not null;index"`
	StartDate       time.Time `json:"start_date" gorm:"not null;index"`
	EndDate         time.Time `json:"end_date" gorm:"not null"`
	EntryFee        float64   `json:"entry_fee" gorm:"not null;default:0"`
	CashPrizeAmount float64   `json:"cash_prize_amount" gorm:"not null;default:0"`

	MinimumParticipants int `json:"minimum_participants" gorm:"not null;default:2"`
	MaximumParticipants int `json:"maximum_participants" gorm:"not null;default:100"`

	Status TournamentStatus `json:"status" gorm:"type:varchar(16);default:'SCHEDULED';not null"`

	// Optimistic concurrency counter, bumped on every write.
	Version uint `json:"version" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Participants []Member `json:"participants,omitempty" gorm:"many2many:tournament_members"`

	// Calculated field (not stored in DB)
	ParticipantCount int64 `json:"participant_count,omitempty" gorm:"-"`
}

// Runs reports whether the tournament is running on the given day (inclusive window).
func (t *Tournament) Runs(day time.Time) bool {
	return !day.Before(t.StartDate) && !day.After(t.EndDate)
}
