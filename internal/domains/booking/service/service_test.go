package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wakens/config"
	"wakens/infras/otel/mocks"
	bookingMocks "wakens/internal/domains/booking/mocks"
	"wakens/internal/domains/booking/model"
	"wakens/internal/domains/booking/model/dto"
	"wakens/internal/domains/booking/service"
	hotelMocks "wakens/internal/domains/hotel/mocks"
	hotelModel "wakens/internal/domains/hotel/model"
	notificationMocks "wakens/internal/domains/notification/mocks"
	roomMocks "wakens/internal/domains/room/mocks"
	roomModel "wakens/internal/domains/room/model"
	"wakens/shared/constant"
	"wakens/shared/failure"
)

type fixture struct {
	repo     *bookingMocks.MockBooking
	handoff  *bookingMocks.MockHandoff
	rooms    *roomMocks.MockRoom
	hotels   *hotelMocks.MockHotel
	notifier *notificationMocks.MockNotification
	svc      service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		handoff:  bookingMocks.NewMockHandoff(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		hotels:   hotelMocks.NewMockHotel(ctrl),
		notifier: notificationMocks.NewMockNotification(ctrl),
	}

	f.svc = service.New(f.repo, f.handoff, f.rooms, f.hotels, f.notifier, &config.Config{}, mocks.NewOtel())

	return f
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		GuestName:     "Asha Verma",
		GuestEmail:    "asha@example.com",
		GuestPhone:    "+91 98765 43210",
		CheckIn:       "2025-11-25",
		CheckOut:      "2025-11-27",
		Guests:        2,
		RoomID:        "room-1",
		PaymentMethod: constant.PaymentMethodUPI,
	}
}

func expectCatalog(f *fixture) {
	f.rooms.EXPECT().
		Get(gomock.Any(), "room-1").
		Return(roomModel.Room{ID: "room-1", HotelID: "hotel-1", Name: "Canopy Suite", Price: 1800}, nil)
	f.hotels.EXPECT().
		Get(gomock.Any(), "hotel-1").
		Return(hotelModel.Hotel{ID: "hotel-1", Name: "The Emerald Court"}, nil)
}

func awaitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)
	expectCatalog(f)

	persisted := make(chan struct{})
	notified := make(chan struct{})

	var stored model.Booking

	f.handoff.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) (string, error) {
			stored = booking
			close(persisted)

			return booking.ID, nil
		})
	f.notifier.EXPECT().
		SendBookingConfirmation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Booking) error {
			close(notified)

			return nil
		})

	res, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	awaitSignal(t, persisted, "booking persistence")
	awaitSignal(t, notified, "booking confirmation email")

	assert.Equal(t, 2, res.Nights)
	assert.InDelta(t, 3600, res.TotalPrice, 0.001)
	assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
	assert.Equal(t, "The Emerald Court", res.HotelName)
	assert.Equal(t, "Canopy Suite", res.RoomName)
	assert.True(t, strings.HasPrefix(res.BookingID, "BK"))
	assert.Equal(t, res.BookingID, stored.BookingID)
}

func TestBookingService_CreateSucceedsWhenSideEffectsFail(t *testing.T) {
	f := newFixture(t)
	expectCatalog(f)

	persisted := make(chan struct{})
	notified := make(chan struct{})

	f.handoff.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	f.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Booking) (string, error) {
			close(persisted)

			return "", errors.New("mongo down")
		})
	f.notifier.EXPECT().
		SendBookingConfirmation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Booking) error {
			close(notified)

			return errors.New("smtp down")
		})

	res, err := f.svc.Create(context.Background(), validRequest())

	awaitSignal(t, persisted, "booking persistence attempt")
	awaitSignal(t, notified, "booking confirmation attempt")

	require.NoError(t, err)
	assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
}

func TestBookingService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
	}{
		{
			name:   "missing guest email",
			mutate: func(r *dto.CreateBookingRequest) { r.GuestEmail = "" },
		},
		{
			name:   "check-out before check-in",
			mutate: func(r *dto.CreateBookingRequest) { r.CheckOut = "2025-11-24" },
		},
		{
			name:   "unknown payment method",
			mutate: func(r *dto.CreateBookingRequest) { r.PaymentMethod = "Cheque" },
		},
		{
			name:   "zero guests",
			mutate: func(r *dto.CreateBookingRequest) { r.Guests = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := validRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), req)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestBookingService_CreateUnknownRoom(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().
		Get(gomock.Any(), "room-1").
		Return(roomModel.Room{}, nil)

	_, err := f.svc.Create(context.Background(), validRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_List(t *testing.T) {
	t.Run("passes filter through", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			List(gomock.Any(), model.ListFilter{Status: constant.BookingStatusConfirmed, Search: "asha"}).
			Return([]model.Booking{{BookingID: "BK1"}, {BookingID: "BK2"}}, nil)

		res, err := f.svc.List(context.Background(), constant.BookingStatusConfirmed, "asha")
		require.NoError(t, err)

		assert.Equal(t, 2, res.Count)
		assert.Equal(t, "BK1", res.Bookings[0].BookingID)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.List(context.Background(), "pending", "")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("no match yields empty list", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			List(gomock.Any(), model.ListFilter{Search: "nobody"}).
			Return([]model.Booking{}, nil)

		res, err := f.svc.List(context.Background(), "", "nobody")
		require.NoError(t, err)

		assert.Equal(t, 0, res.Count)
		assert.NotNil(t, res.Bookings)
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), "BK42").
			Return(model.Booking{BookingID: "BK42"}, true, nil)

		res, err := f.svc.Get(context.Background(), "BK42")
		require.NoError(t, err)

		assert.Equal(t, "BK42", res.BookingID)
	})

	t.Run("absent", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), "BK42").
			Return(model.Booking{}, false, nil)

		_, err := f.svc.Get(context.Background(), "BK42")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Claim(t *testing.T) {
	t.Run("first claim succeeds", func(t *testing.T) {
		f := newFixture(t)

		f.handoff.EXPECT().
			Claim(gomock.Any(), "BK42").
			Return(model.Booking{BookingID: "BK42"}, true, nil)

		res, err := f.svc.Claim(context.Background(), "BK42")
		require.NoError(t, err)

		assert.Equal(t, "BK42", res.BookingID)
	})

	t.Run("expired or already viewed", func(t *testing.T) {
		f := newFixture(t)

		f.handoff.EXPECT().
			Claim(gomock.Any(), "BK42").
			Return(model.Booking{}, false, nil)

		_, err := f.svc.Claim(context.Background(), "BK42")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
