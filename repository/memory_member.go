package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"club-management-system/apperrors"
	"club-management-system/models"
)

// MemoryMemberRepository implements MemberRepository with mutex-guarded maps.
// Used by the tests and by the storage-free console demo mode.
type MemoryMemberRepository struct {
	mu      sync.RWMutex
	members map[uint]*models.Member
	nextID  uint

	// Installed by NewMemoryTournamentRepository, which owns the join relation.
	byTournamentDate func(ctx context.Context, date time.Time) ([]models.Member, error)
}

func NewMemoryMemberRepository() *MemoryMemberRepository {
	return &MemoryMemberRepository{members: make(map[uint]*models.Member)}
}

func (r *MemoryMemberRepository) Create(ctx context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	stored := *m
	r.members[m.ID] = &stored
	return nil
}

func (r *MemoryMemberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[id]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *MemoryMemberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.Email == email {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (r *MemoryMemberRepository) GetByPhone(ctx context.Context, phone string) (*models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.Phone == phone {
			copied := *m
			return &copied, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (r *MemoryMemberRepository) Update(ctx context.Context, m *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.members[m.ID]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	if stored.Version != m.Version {
		return apperrors.ErrVersionConflict
	}
	m.Version++
	m.UpdatedAt = time.Now()
	copied := *m
	r.members[m.ID] = &copied
	return nil
}

func (r *MemoryMemberRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[id]; !ok {
		return apperrors.ErrMemberNotFound
	}
	delete(r.members, id)
	return nil
}

func (r *MemoryMemberRepository) List(ctx context.Context) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m *models.Member) bool { return true }), nil
}

func (r *MemoryMemberRepository) SearchByName(ctx context.Context, name string) ([]models.Member, error) {
	needle := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m *models.Member) bool {
		return strings.Contains(strings.ToLower(m.Name), needle)
	}), nil
}

func (r *MemoryMemberRepository) SearchByPhone(ctx context.Context, phone string) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m *models.Member) bool {
		return strings.Contains(m.Phone, phone)
	}), nil
}

func (r *MemoryMemberRepository) ListByStatus(ctx context.Context, status models.MembershipStatus) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m *models.Member) bool { return m.Status == status }), nil
}

func (r *MemoryMemberRepository) ListByMinTournaments(ctx context.Context, count int) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m *models.Member) bool { return m.TotalTournamentsPlayed > count }), nil
}

func (r *MemoryMemberRepository) ListActive(ctx context.Context, now time.Time) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(m *models.Member) bool {
		return m.Status == models.MemberActive && !m.MembershipEnd().Before(now)
	}), nil
}

// ListByTournamentStartDate needs the join relation, which the tournament
// repository owns; the memory pair is wired together in NewMemoryTournamentRepository.
func (r *MemoryMemberRepository) ListByTournamentStartDate(ctx context.Context, date time.Time) ([]models.Member, error) {
	r.mu.RLock()
	joined := r.byTournamentDate
	r.mu.RUnlock()
	if joined == nil {
		return []models.Member{}, nil
	}
	return joined(ctx, date)
}

func (r *MemoryMemberRepository) collect(keep func(*models.Member) bool) []models.Member {
	out := make([]models.Member, 0, len(r.members))
	for _, m := range r.members {
		if keep(m) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
