package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"club-management-system/apperrors"
	"club-management-system/models"
	"club-management-system/repository"
)

func newMemberRegistry() *MemberRegistry {
	return NewMemberRegistry(repository.NewMemoryMemberRepository())
}

func validMember() *models.Member {
	return &models.Member{
		Name:           "John Smith",
		Address:        "12 Fairway Drive",
		Email:          "john@club.org",
		Phone:          "555-123-4567",
		StartDate:      time.Now().AddDate(0, -1, 0),
		DurationMonths: 12,
	}
}

func TestMemberCreate(t *testing.T) {
	ctx := context.Background()
	registry := newMemberRegistry()

	in := validMember()
	in.Status = models.MemberSuspended
	in.TotalTournamentsPlayed = 7
	in.TotalWinnings = 500

	created, err := registry.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if created.Status != models.MemberActive {
		t.Errorf("status = %s, want ACTIVE", created.Status)
	}
	if created.TotalTournamentsPlayed != 0 || created.TotalWinnings != 0 {
		t.Error("counters should be zeroed on create")
	}
}

func TestMemberCreateValidation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name   string
		mutate func(*models.Member)
	}{
		{"bad name", func(m *models.Member) { m.Name = "X" }},
		{"blank address", func(m *models.Member) { m.Address = "  " }},
		{"bad email", func(m *models.Member) { m.Email = "not-an-email" }},
		{"bad phone", func(m *models.Member) { m.Phone = "5551234567" }},
		{"future start date", func(m *models.Member) { m.StartDate = time.Now().AddDate(0, 0, 7) }},
		{"zero duration", func(m *models.Member) { m.DurationMonths = 0 }},
		{"duration too long", func(m *models.Member) { m.DurationMonths = 61 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry := newMemberRegistry()
			m := validMember()
			tc.mutate(m)
			if _, err := registry.Create(ctx, m); !apperrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestMemberCreateUniqueness(t *testing.T) {
	ctx := context.Background()
	registry := newMemberRegistry()

	if _, err := registry.Create(ctx, validMember()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	dup := validMember()
	dup.Phone = "555-999-0000"
	if _, err := registry.Create(ctx, dup); !errors.Is(err, apperrors.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	dup = validMember()
	dup.Email = "other@club.org"
	if _, err := registry.Create(ctx, dup); !errors.Is(err, apperrors.ErrDuplicatePhone) {
		t.Errorf("expected ErrDuplicatePhone, got %v", err)
	}
}

func TestMemberUpdate(t *testing.T) {
	ctx := context.Background()
	registry := newMemberRegistry()

	first, err := registry.Create(ctx, validMember())
	if err != nil {
		t.Fatalf("seed first: %v", err)
	}
	second := validMember()
	second.Email = "jane@club.org"
	second.Phone = "555-222-3333"
	second.Name = "Jane Smith"
	if _, err := registry.Create(ctx, second); err != nil {
		t.Fatalf("seed second: %v", err)
	}

	// Keeping the same email skips the uniqueness check entirely, so even a
	// phone collision with another member goes through.
	in := validMember()
	in.Phone = second.Phone
	updated, err := registry.Update(ctx, first.ID, in)
	if err != nil {
		t.Fatalf("Update with unchanged email: %v", err)
	}
	if updated.Phone != second.Phone {
		t.Errorf("phone = %s, want %s", updated.Phone, second.Phone)
	}

	// Changing the email to another member's email must fail.
	in = validMember()
	in.Email = second.Email
	if _, err := registry.Update(ctx, first.ID, in); !errors.Is(err, apperrors.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	// Changing the email to a fresh one is fine.
	in = validMember()
	in.Email = "john.new@club.org"
	if _, err := registry.Update(ctx, first.ID, in); err != nil {
		t.Errorf("Update with fresh email: %v", err)
	}

	if _, err := registry.Update(ctx, 999, validMember()); !errors.Is(err, apperrors.ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestMemberSetStatus(t *testing.T) {
	ctx := context.Background()
	registry := newMemberRegistry()

	m, err := registry.Create(ctx, validMember())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := registry.SetStatus(ctx, m.ID, models.MemberSuspended); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, err := registry.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != models.MemberSuspended {
		t.Errorf("status = %s, want SUSPENDED", got.Status)
	}

	// Missing member is a silent no-op.
	if err := registry.SetStatus(ctx, 999, models.MemberExpired); err != nil {
		t.Errorf("SetStatus on missing id: %v", err)
	}

	if err := registry.SetStatus(ctx, m.ID, "BOGUS"); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestMemberListActive(t *testing.T) {
	ctx := context.Background()
	registry := newMemberRegistry()

	current, err := registry.Create(ctx, validMember())
	if err != nil {
		t.Fatalf("seed current: %v", err)
	}

	// ACTIVE status but the term lapsed two years ago.
	lapsed := validMember()
	lapsed.Email = "old@club.org"
	lapsed.Phone = "555-777-8888"
	lapsed.StartDate = time.Now().AddDate(-3, 0, 0)
	lapsed.DurationMonths = 12
	if _, err := registry.Create(ctx, lapsed); err != nil {
		t.Fatalf("seed lapsed: %v", err)
	}

	active, err := registry.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].ID != current.ID {
		t.Errorf("ListActive = %d members, want only member %d", len(active), current.ID)
	}
}
