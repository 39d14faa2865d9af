package repository

import (
	"context"
	"sync"
	"time"

	"wakens/config"
	"wakens/internal/domains/booking/model"
	"wakens/shared/timezone"
)

type handoffEntry struct {
	booking   model.Booking
	expiresAt time.Time
}

// handoffMemoryImpl is the demo-mode handoff slot. Entries are evicted
// lazily on Claim rather than by a sweeper; the map stays tiny either way.
type handoffMemoryImpl struct {
	mu      sync.Mutex
	entries map[string]handoffEntry
	ttl     time.Duration
}

func NewHandoffMemory(conf *config.Config) Handoff {
	return &handoffMemoryImpl{
		entries: map[string]handoffEntry{},
		ttl:     handoffTTL(conf),
	}
}

func (repo *handoffMemoryImpl) Put(_ context.Context, booking model.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.entries[booking.BookingID] = handoffEntry{
		booking:   booking,
		expiresAt: timezone.Now().Add(repo.ttl),
	}

	return nil
}

func (repo *handoffMemoryImpl) Claim(_ context.Context, bookingID string) (model.Booking, bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	entry, ok := repo.entries[bookingID]
	if !ok {
		return model.Booking{}, false, nil
	}

	delete(repo.entries, bookingID)

	if timezone.Now().After(entry.expiresAt) {
		return model.Booking{}, false, nil
	}

	return entry.booking, true, nil
}
