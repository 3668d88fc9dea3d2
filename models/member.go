package models

import (
	"time"
)

// MembershipStatus is the lifecycle state of a club membership.
type MembershipStatus string

const (
	MemberActive    MembershipStatus = "ACTIVE"
	MemberExpired   MembershipStatus = "EXPIRED"
	MemberSuspended MembershipStatus = "SUSPENDED"
	MemberPending   MembershipStatus = "PENDING"
)

// ValidMembershipStatus reports whether s is one of the known statuses.
func ValidMembershipStatus(s MembershipStatus) bool {
	switch s {
	case MemberActive, MemberExpired, MemberSuspended, MemberPending:
		return true
	}
	return false
}

// Member is a club member with participation history.
type Member struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Address        string    `json:"address" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string    `json:"phone" gorm:"uniqueIndex;not null"`
	StartDate      time.Time `json:"start_date" gorm:"not null;index"`
	DurationMonths int       `json:"duration_months" gorm:"not null"`

	Status                 MembershipStatus `json:"status" gorm:"type:varchar(16);default:'ACTIVE';not null"`
	TotalTournamentsPlayed int              `json:"total_tournaments_played" gorm:"default:0"`
	TotalWinnings          float64          `json:"total_winnings" gorm:"default:0"`

	// Optimistic concurrency counter, bumped on every write.
	Version uint `json:"version" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Tournaments []Tournament `json:"tournaments,omitempty" gorm:"many2many:tournament_members"`
}

// MembershipEnd is the day the membership term lapses.
func (m *Member) MembershipEnd() time.Time {
	return m.StartDate.AddDate(0, m.DurationMonths, 0)
}
