package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"wakens/internal/domains/booking/model"
	"wakens/shared/constant"
)

// memoryImpl is the demo-mode booking store used when no document store
// is configured. Bookings live for the process lifetime only.
type memoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
}

func NewMemory() Booking {
	return &memoryImpl{}
}

func (repo *memoryImpl) Create(_ context.Context, booking model.Booking) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	applyDefaults(&booking)

	repo.bookings = append(repo.bookings, booking)

	return booking.ID, nil
}

func (repo *memoryImpl) List(_ context.Context, filter model.ListFilter) ([]model.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	bookings := []model.Booking{}

	for _, booking := range repo.bookings {
		if filter.Status != constant.Empty && booking.Status != filter.Status {
			continue
		}

		if filter.Search != constant.Empty && !matches(booking, filter.Search) {
			continue
		}

		bookings = append(bookings, booking)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (repo *memoryImpl) Get(_ context.Context, id string) (model.Booking, bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, booking := range repo.bookings {
		if booking.ID == id || booking.BookingID == id {
			return booking, true, nil
		}
	}

	return model.Booking{}, false, nil
}

func matches(booking model.Booking, search string) bool {
	needle := strings.ToLower(search)

	for _, haystack := range []string{booking.GuestName, booking.GuestEmail, booking.BookingID, booking.HotelName} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}

	return false
}
