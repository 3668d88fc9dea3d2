package repository

import (
	"context"
	"errors"
	"time"

	"club-management-system/apperrors"
	"club-management-system/models"

	"gorm.io/gorm"
)

// GormMemberRepository persists members in Postgres through GORM.
type GormMemberRepository struct {
	DB *gorm.DB
}

func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{DB: db}
}

func (r *GormMemberRepository) Create(ctx context.Context, m *models.Member) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *GormMemberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormMemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormMemberRepository) GetByPhone(ctx context.Context, phone string) (*models.Member, error) {
	var m models.Member
	if err := r.DB.WithContext(ctx).First(&m, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Update writes back every mutable column, guarded by the version the caller
// read. A zero-row update on an existing record means the version advanced.
func (r *GormMemberRepository) Update(ctx context.Context, m *models.Member) error {
	result := r.DB.WithContext(ctx).Model(&models.Member{}).
		Where("id = ? AND version = ?", m.ID, m.Version).
		Updates(map[string]interface{}{
			"name":                     m.Name,
			"address":                  m.Address,
			"email":                    m.Email,
			"phone":                    m.Phone,
			"start_date":               m.StartDate,
			"duration_months":          m.DurationMonths,
			"status":                   m.Status,
			"total_tournaments_played": m.TotalTournamentsPlayed,
			"total_winnings":           m.TotalWinnings,
			"version":                  m.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		r.DB.WithContext(ctx).Model(&models.Member{}).Where("id = ?", m.ID).Count(&count)
		if count == 0 {
			return apperrors.ErrMemberNotFound
		}
		return apperrors.ErrVersionConflict
	}
	m.Version++
	return nil
}

func (r *GormMemberRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

func (r *GormMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&members).Error
	return members, err
}

func (r *GormMemberRepository) SearchByName(ctx context.Context, name string) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("id ASC").
		Find(&members).Error
	return members, err
}

func (r *GormMemberRepository) SearchByPhone(ctx context.Context, phone string) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).
		Where("phone LIKE ?", "%"+phone+"%").
		Order("id ASC").
		Find(&members).Error
	return members, err
}

func (r *GormMemberRepository) ListByStatus(ctx context.Context, status models.MembershipStatus) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

func (r *GormMemberRepository) ListByMinTournaments(ctx context.Context, count int) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).
		Where("total_tournaments_played > ?", count).
		Order("id ASC").
		Find(&members).Error
	return members, err
}

// ListActive returns ACTIVE members whose membership term has not lapsed. The
// month arithmetic happens in Go; the data volumes here are small.
func (r *GormMemberRepository) ListActive(ctx context.Context, now time.Time) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).
		Where("status = ?", models.MemberActive).
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	active := make([]models.Member, 0, len(members))
	for _, m := range members {
		if !m.MembershipEnd().Before(now) {
			active = append(active, m)
		}
	}
	return active, nil
}

func (r *GormMemberRepository) ListByTournamentStartDate(ctx context.Context, date time.Time) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).Raw(`
        SELECT m.*
        FROM members m
        JOIN tournament_members tm ON tm.member_id = m.id
        JOIN tournaments t ON t.id = tm.tournament_id
        WHERE t.start_date::date = ?::date
        ORDER BY m.id ASC
    `, date).Scan(&members).Error
	return members, err
}
