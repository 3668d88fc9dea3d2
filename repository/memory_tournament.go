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

// MemoryTournamentRepository implements TournamentRepository with
// mutex-guarded maps plus an explicit participation set, owned by neither
// entity. Participant order is insertion order.
type MemoryTournamentRepository struct {
	mu          sync.RWMutex
	tournaments map[uint]*models.Tournament
	// tournament ID -> member IDs in insertion order
	participants map[uint][]uint
	nextID       uint

	members *MemoryMemberRepository
}

func NewMemoryTournamentRepository(members *MemoryMemberRepository) *MemoryTournamentRepository {
	r := &MemoryTournamentRepository{
		tournaments:  make(map[uint]*models.Tournament),
		participants: make(map[uint][]uint),
		members:      members,
	}
	members.byTournamentDate = r.membersByStartDate
	return r
}

func (r *MemoryTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	stored := *t
	stored.Participants = nil
	r.tournaments[t.ID] = &stored
	return nil
}

func (r *MemoryTournamentRepository) GetByID(ctx context.Context, id uint) (*models.Tournament, error) {
	r.mu.RLock()
	t, ok := r.tournaments[id]
	if !ok {
		r.mu.RUnlock()
		return nil, apperrors.ErrTournamentNotFound
	}
	copied := *t
	memberIDs := append([]uint(nil), r.participants[id]...)
	r.mu.RUnlock()

	copied.Participants = make([]models.Member, 0, len(memberIDs))
	for _, mid := range memberIDs {
		m, err := r.members.GetByID(ctx, mid)
		if err != nil {
			continue
		}
		copied.Participants = append(copied.Participants, *m)
	}
	copied.ParticipantCount = int64(len(copied.Participants))
	return &copied, nil
}

func (r *MemoryTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tournaments[t.ID]
	if !ok {
		return apperrors.ErrTournamentNotFound
	}
	if stored.Version != t.Version {
		return apperrors.ErrVersionConflict
	}
	t.Version++
	t.UpdatedAt = time.Now()
	copied := *t
	copied.Participants = nil
	r.tournaments[t.ID] = &copied
	return nil
}

func (r *MemoryTournamentRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[id]; !ok {
		return apperrors.ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	delete(r.participants, id)
	return nil
}

func (r *MemoryTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	return r.collect(func(t *models.Tournament) bool { return true }), nil
}

func (r *MemoryTournamentRepository) SearchByLocation(ctx context.Context, location string) ([]models.Tournament, error) {
	needle := strings.ToLower(location)
	return r.collect(func(t *models.Tournament) bool {
		return strings.Contains(strings.ToLower(t.Location), needle)
	}), nil
}

func (r *MemoryTournamentRepository) ListByStatus(ctx context.Context, status models.TournamentStatus) ([]models.Tournament, error) {
	return r.collect(func(t *models.Tournament) bool { return t.Status == status }), nil
}

func (r *MemoryTournamentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Tournament, error) {
	return r.collect(func(t *models.Tournament) bool {
		return !t.StartDate.Before(from) && !t.StartDate.After(to)
	}), nil
}

func (r *MemoryTournamentRepository) ListCurrent(ctx context.Context, now time.Time) ([]models.Tournament, error) {
	return r.collect(func(t *models.Tournament) bool { return t.Runs(now) }), nil
}

func (r *MemoryTournamentRepository) ListByMaxEntryFee(ctx context.Context, maxFee float64) ([]models.Tournament, error) {
	return r.collect(func(t *models.Tournament) bool { return t.EntryFee <= maxFee }), nil
}

func (r *MemoryTournamentRepository) ListByMinPrize(ctx context.Context, minPrize float64) ([]models.Tournament, error) {
	return r.collect(func(t *models.Tournament) bool { return t.CashPrizeAmount >= minPrize }), nil
}

func (r *MemoryTournamentRepository) ListWithAtLeast(ctx context.Context, minCount int) ([]models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collectLocked(func(t *models.Tournament) bool {
		return len(r.participants[t.ID]) >= minCount
	}), nil
}

func (r *MemoryTournamentRepository) ListAvailable(ctx context.Context) ([]models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collectLocked(func(t *models.Tournament) bool {
		return len(r.participants[t.ID]) < t.MaximumParticipants
	}), nil
}

func (r *MemoryTournamentRepository) AddParticipant(ctx context.Context, tournamentID, memberID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mid := range r.participants[tournamentID] {
		if mid == memberID {
			return nil
		}
	}
	r.participants[tournamentID] = append(r.participants[tournamentID], memberID)
	return nil
}

func (r *MemoryTournamentRepository) RemoveParticipant(ctx context.Context, tournamentID, memberID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.participants[tournamentID]
	for i, mid := range ids {
		if mid == memberID {
			r.participants[tournamentID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryTournamentRepository) HasParticipant(ctx context.Context, tournamentID, memberID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, mid := range r.participants[tournamentID] {
		if mid == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryTournamentRepository) Participants(ctx context.Context, tournamentID uint) ([]models.Member, error) {
	r.mu.RLock()
	memberIDs := append([]uint(nil), r.participants[tournamentID]...)
	r.mu.RUnlock()

	members := make([]models.Member, 0, len(memberIDs))
	for _, mid := range memberIDs {
		m, err := r.members.GetByID(ctx, mid)
		if err != nil {
			continue
		}
		members = append(members, *m)
	}
	return members, nil
}

func (r *MemoryTournamentRepository) ParticipantCount(ctx context.Context, tournamentID uint) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.participants[tournamentID])), nil
}

func (r *MemoryTournamentRepository) TotalCompletedRevenue(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for id, t := range r.tournaments {
		if t.Status == models.TournamentCompleted {
			total += t.EntryFee * float64(len(r.participants[id]))
		}
	}
	return total, nil
}

func (r *MemoryTournamentRepository) membersByStartDate(ctx context.Context, date time.Time) ([]models.Member, error) {
	r.mu.RLock()
	seen := make(map[uint]bool)
	var memberIDs []uint
	y, m, d := date.Date()
	for id, t := range r.tournaments {
		ty, tm, td := t.StartDate.Date()
		if ty == y && tm == m && td == d {
			for _, mid := range r.participants[id] {
				if !seen[mid] {
					seen[mid] = true
					memberIDs = append(memberIDs, mid)
				}
			}
		}
	}
	r.mu.RUnlock()

	members := make([]models.Member, 0, len(memberIDs))
	for _, mid := range memberIDs {
		member, err := r.members.GetByID(ctx, mid)
		if err != nil {
			continue
		}
		members = append(members, *member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (r *MemoryTournamentRepository) collect(keep func(*models.Tournament) bool) []models.Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collectLocked(keep)
}

func (r *MemoryTournamentRepository) collectLocked(keep func(*models.Tournament) bool) []models.Tournament {
	out := make([]models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		if keep(t) {
			copied := *t
			copied.ParticipantCount = int64(len(r.participants[t.ID]))
			out = append(out, copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
