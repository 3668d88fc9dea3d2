package workers

import (
	"context"
	"log"
	"os"
	"time"

	"club-management-system/models"
	"club-management-system/repository"

	"github.com/go-co-op/gocron/v2"
)

const defaultExpiryInterval = 24 * time.Hour

// StartMembershipExpiryWorker runs a periodic sweep that marks ACTIVE members
// whose membership term has lapsed as EXPIRED. The interval comes from
// MEMBERSHIP_EXPIRY_INTERVAL (Go duration syntax), defaulting to daily.
// Returns the scheduler so the caller can shut it down.
func StartMembershipExpiryWorker(members repository.MemberRepository) (gocron.Scheduler, error) {
	interval := defaultExpiryInterval
	if raw := os.Getenv("MEMBERSHIP_EXPIRY_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("[ExpiryWorker] invalid MEMBERSHIP_EXPIRY_INTERVAL %q, using default: %v", raw, err)
		} else {
			interval = parsed
		}
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ExpireLapsedMemberships(context.Background(), members)
		}),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}

// ExpireLapsedMemberships is one sweep over the ACTIVE members.
func ExpireLapsedMemberships(ctx context.Context, members repository.MemberRepository) {
	active, err := members.ListByStatus(ctx, models.MemberActive)
	if err != nil {
		log.Printf("[ExpiryWorker] DB error: %v", err)
		return
	}
	now := time.Now()
	for i := range active {
		m := active[i]
		if m.MembershipEnd().After(now) {
			continue
		}
		m.Status = models.MemberExpired
		if err := members.Update(ctx, &m); err != nil {
			log.Printf("[ExpiryWorker] failed to expire member %d: %v", m.ID, err)
			continue
		}
		log.Printf("✅ Membership expired for member %d (%s)", m.ID, m.Name)
	}
}
