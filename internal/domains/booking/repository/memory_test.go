package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakens/config"
	"wakens/internal/domains/booking/model"
	"wakens/internal/domains/booking/repository"
	"wakens/shared/constant"
)

func seedBookings(t *testing.T, repo repository.Booking) {
	t.Helper()

	base := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)

	bookings := []model.Booking{
		{
			BookingID:  "BK1",
			GuestName:  "Asha Verma",
			GuestEmail: "asha@example.com",
			HotelName:  "The Emerald Court",
			CreatedAt:  base.Add(2 * time.Hour),
		},
		{
			BookingID:  "BK2",
			GuestName:  "Rohan Mehta",
			GuestEmail: "rohan@example.com",
			HotelName:  "Azure Bay Resort",
			Status:     constant.BookingStatusCancelled,
			CreatedAt:  base,
		},
		{
			BookingID:  "BK3",
			GuestName:  "Lena Fischer",
			GuestEmail: "lena@example.com",
			HotelName:  "The Emerald Court",
			CreatedAt:  base.Add(time.Hour),
		},
	}

	for _, booking := range bookings {
		_, err := repo.Create(context.Background(), booking)
		require.NoError(t, err)
	}
}

func TestMemoryBooking_CreateAssignsServerFields(t *testing.T) {
	repo := repository.NewMemory()

	id, err := repo.Create(context.Background(), model.Booking{BookingID: "BK9"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	booking, found, err := repo.Get(context.Background(), "BK9")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, id, booking.ID)
	assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestMemoryBooking_ListOrdersByCreatedAtDesc(t *testing.T) {
	repo := repository.NewMemory()
	seedBookings(t, repo)

	bookings, err := repo.List(context.Background(), model.ListFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, "BK1", bookings[0].BookingID)
	assert.Equal(t, "BK3", bookings[1].BookingID)
	assert.Equal(t, "BK2", bookings[2].BookingID)
}

func TestMemoryBooking_ListFilters(t *testing.T) {
	repo := repository.NewMemory()
	seedBookings(t, repo)

	t.Run("by status", func(t *testing.T) {
		bookings, err := repo.List(context.Background(), model.ListFilter{Status: constant.BookingStatusCancelled})
		require.NoError(t, err)
		require.Len(t, bookings, 1)

		assert.Equal(t, "BK2", bookings[0].BookingID)
	})

	t.Run("search is case-insensitive over guest and hotel fields", func(t *testing.T) {
		bookings, err := repo.List(context.Background(), model.ListFilter{Search: "emerald"})
		require.NoError(t, err)

		assert.Len(t, bookings, 2)
	})

	t.Run("search by booking id", func(t *testing.T) {
		bookings, err := repo.List(context.Background(), model.ListFilter{Search: "bk3"})
		require.NoError(t, err)
		require.Len(t, bookings, 1)

		assert.Equal(t, "Lena Fischer", bookings[0].GuestName)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		bookings, err := repo.List(context.Background(), model.ListFilter{Search: "nobody"})
		require.NoError(t, err)

		assert.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})
}

func TestMemoryBooking_GetByEitherID(t *testing.T) {
	repo := repository.NewMemory()

	storageID, err := repo.Create(context.Background(), model.Booking{BookingID: "BK7"})
	require.NoError(t, err)

	byBookingID, found, err := repo.Get(context.Background(), "BK7")
	require.NoError(t, err)
	require.True(t, found)

	byStorageID, found, err := repo.Get(context.Background(), storageID)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, byBookingID.ID, byStorageID.ID)

	_, found, err = repo.Get(context.Background(), "BK404")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryHandoff_ClaimOnce(t *testing.T) {
	handoff := repository.NewHandoffMemory(&config.Config{})

	booking := model.Booking{BookingID: "BK7", GuestName: "Asha Verma"}
	require.NoError(t, handoff.Put(context.Background(), booking))

	claimed, found, err := handoff.Claim(context.Background(), "BK7")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Asha Verma", claimed.GuestName)

	_, found, err = handoff.Claim(context.Background(), "BK7")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryHandoff_UnknownBooking(t *testing.T) {
	handoff := repository.NewHandoffMemory(&config.Config{})

	_, found, err := handoff.Claim(context.Background(), "BK404")
	require.NoError(t, err)
	assert.False(t, found)
}
