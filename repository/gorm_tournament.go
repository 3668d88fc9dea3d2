package repository

import (
	"context"
	"errors"
	"time"

	"club-management-system/apperrors"
	"club-management-system/models"

	"gorm.io/gorm"
)

// GormTournamentRepository persists tournaments and the participation join
// table in Postgres through GORM.
type GormTournamentRepository struct {
	DB *gorm.DB
}

func NewGormTournamentRepository(db *gorm.DB) *GormTournamentRepository {
	return &GormTournamentRepository{DB: db}
}

func (r *GormTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	return r.DB.WithContext(ctx).Omit("Participants").Create(t).Error
}

func (r *GormTournamentRepository) GetByID(ctx context.Context, id uint) (*models.Tournament, error) {
	var t models.Tournament
	err := r.DB.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("members.id ASC")
		}).
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, err
	}
	t.ParticipantCount = int64(len(t.Participants))
	return &t, nil
}

// Update writes back the tournament columns, guarded by the version the
// caller read. The participant list is managed through Add/RemoveParticipant.
func (r *GormTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	result := r.DB.WithContext(ctx).Model(&models.Tournament{}).
		Where("id = ? AND version = ?", t.ID, t.Version).
		Updates(map[string]interface{}{
			"location":             t.Location,
			"start_date":           t.StartDate,
			"end_date":             t.EndDate,
			"entry_fee":            t.EntryFee,
			"cash_prize_amount":    t.CashPrizeAmount,
			"minimum_participants": t.MinimumParticipants,
			"maximum_participants": t.MaximumParticipants,
			"status":               t.Status,
			"version":              t.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		r.DB.WithContext(ctx).Model(&models.Tournament{}).Where("id = ?", t.ID).Count(&count)
		if count == 0 {
			return apperrors.ErrTournamentNotFound
		}
		return apperrors.ErrVersionConflict
	}
	t.Version++
	return nil
}

func (r *GormTournamentRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM tournament_members WHERE tournament_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Tournament{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrTournamentNotFound
		}
		return nil
	})
}

func (r *GormTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx))
}

func (r *GormTournamentRepository) SearchByLocation(ctx context.Context, location string) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("location ILIKE ?", "%"+location+"%"))
}

func (r *GormTournamentRepository) ListByStatus(ctx context.Context, status models.TournamentStatus) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("status = ?", status))
}

func (r *GormTournamentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("start_date BETWEEN ? AND ?", from, to))
}

func (r *GormTournamentRepository) ListCurrent(ctx context.Context, now time.Time) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("start_date <= ? AND end_date >= ?", now, now))
}

func (r *GormTournamentRepository) ListByMaxEntryFee(ctx context.Context, maxFee float64) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("entry_fee <= ?", maxFee))
}

func (r *GormTournamentRepository) ListByMinPrize(ctx context.Context, minPrize float64) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).Where("cash_prize_amount >= ?", minPrize))
}

func (r *GormTournamentRepository) ListWithAtLeast(ctx context.Context, minCount int) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).
		Where("(SELECT COUNT(*) FROM tournament_members tm WHERE tm.tournament_id = tournaments.id) >= ?", minCount))
}

func (r *GormTournamentRepository) ListAvailable(ctx context.Context) ([]models.Tournament, error) {
	return r.find(ctx, r.DB.WithContext(ctx).
		Where("(SELECT COUNT(*) FROM tournament_members tm WHERE tm.tournament_id = tournaments.id) < maximum_participants"))
}

func (r *GormTournamentRepository) find(ctx context.Context, query *gorm.DB) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	err := query.Order("id ASC").Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	for i := range tournaments {
		count, err := r.ParticipantCount(ctx, tournaments[i].ID)
		if err != nil {
			return nil, err
		}
		tournaments[i].ParticipantCount = count
	}
	return tournaments, nil
}

func (r *GormTournamentRepository) AddParticipant(ctx context.Context, tournamentID, memberID uint) error {
	return r.DB.WithContext(ctx).
		Exec("INSERT INTO tournament_members (tournament_id, member_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			tournamentID, memberID).Error
}

func (r *GormTournamentRepository) RemoveParticipant(ctx context.Context, tournamentID, memberID uint) error {
	return r.DB.WithContext(ctx).
		Exec("DELETE FROM tournament_members WHERE tournament_id = ? AND member_id = ?",
			tournamentID, memberID).Error
}

func (r *GormTournamentRepository) HasParticipant(ctx context.Context, tournamentID, memberID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("tournament_members").
		Where("tournament_id = ? AND member_id = ?", tournamentID, memberID).
		Count(&count).Error
	return count > 0, err
}

func (r *GormTournamentRepository) Participants(ctx context.Context, tournamentID uint) ([]models.Member, error) {
	var members []models.Member
	err := r.DB.WithContext(ctx).Raw(`
        SELECT m.*
        FROM members m
        JOIN tournament_members tm ON tm.member_id = m.id
        WHERE tm.tournament_id = ?
        ORDER BY m.id ASC
    `, tournamentID).Scan(&members).Error
	return members, err
}

func (r *GormTournamentRepository) ParticipantCount(ctx context.Context, tournamentID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("tournament_members").
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error
	return count, err
}

func (r *GormTournamentRepository) TotalCompletedRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Raw(`
        SELECT COALESCE(SUM(t.entry_fee * pc.cnt), 0)
        FROM tournaments t
        JOIN (
            SELECT tournament_id, COUNT(*) AS cnt
            FROM tournament_members
            GROUP BY tournament_id
        ) pc ON pc.tournament_id = t.id
        WHERE t.status = ?
    `, models.TournamentCompleted).Scan(&total).Error
	return total, err
}
