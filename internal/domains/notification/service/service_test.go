package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wakens/infras/otel/mocks"
	bookingModel "wakens/internal/domains/booking/model"
	"wakens/internal/domains/notification/service"
)

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.to = to
	f.subject = subject
	f.body = htmlBody

	return f.err
}

func booking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:            "a4c5b5a0-2f6a-4a1e-9f39-1d7b2f9f0001",
		BookingID:     "BK1764049800000",
		GuestName:     "Meera Nair",
		GuestEmail:    "meera@example.com",
		GuestPhone:    "+91 98765 43210",
		CheckIn:       "2025-11-25",
		CheckOut:      "2025-11-27",
		Guests:        2,
		RoomID:        "r1",
		RoomName:      "Canopy Suite",
		RoomPrice:     1800,
		HotelName:     "Alder House",
		PaymentMethod: "UPI",
		Nights:        2,
		TotalPrice:    3600,
		Status:        "confirmed",
		CreatedAt:     time.Date(2025, 11, 25, 9, 30, 0, 0, time.UTC),
	}
}

func TestNotificationService_SendBookingConfirmation(t *testing.T) {
	t.Run("renders and sends the confirmation", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := service.New(mailer, mocks.NewOtel())

		err := svc.SendBookingConfirmation(context.Background(), booking())

		assert.NoError(t, err)
		assert.Equal(t, "meera@example.com", mailer.to)
		assert.Contains(t, mailer.subject, "BK1764049800000")
		assert.Contains(t, mailer.body, "Meera Nair")
		assert.Contains(t, mailer.body, "Alder House")
		assert.Contains(t, mailer.body, "BK1764049800000")
		assert.Contains(t, mailer.body, "2025-11-25")
		assert.Contains(t, mailer.body, "UPI")
		assert.Contains(t, mailer.body, "3600")
	})

	t.Run("sender failure propagates", func(t *testing.T) {
		mailer := &fakeMailer{err: errors.New("smtp unreachable")}
		svc := service.New(mailer, mocks.NewOtel())

		err := svc.SendBookingConfirmation(context.Background(), booking())

		assert.Error(t, err)
	})
}
