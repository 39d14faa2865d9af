package workflow_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakens/internal/domains/booking/model"
	"wakens/internal/domains/booking/workflow"
	"wakens/shared/constant"
	"wakens/shared/failure"
)

func date(value string) time.Time {
	parsed, err := time.Parse(constant.StayDateFormat, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func validDetails() workflow.StayDetails {
	return workflow.StayDetails{
		GuestName:  "Asha Verma",
		GuestEmail: "asha@example.com",
		GuestPhone: "+91 98765 43210",
		CheckIn:    date("2025-11-25"),
		CheckOut:   date("2025-11-27"),
		Guests:     2,
		RoomID:     "room-1",
		RoomName:   "Canopy Suite",
		RoomPrice:  1800,
		HotelName:  "The Emerald Court",
	}
}

func TestWorkflow_Submit(t *testing.T) {
	now := time.Date(2025, time.November, 20, 10, 30, 0, 0, time.UTC)

	flow := workflow.New()
	require.NoError(t, flow.ProvideDetails(validDetails()))
	require.NoError(t, flow.SelectPayment(constant.PaymentMethodUPI))

	booking, err := flow.Submit(now)
	require.NoError(t, err)

	assert.Equal(t, 2, booking.Nights)
	assert.InDelta(t, 3600, booking.TotalPrice, 0.001)
	assert.Equal(t, "BK1763634600000", booking.BookingID)
	assert.Equal(t, constant.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "2025-11-25", booking.CheckIn)
	assert.Equal(t, "2025-11-27", booking.CheckOut)
	assert.Equal(t, now, booking.CreatedAt)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, workflow.StateDone, flow.State())
}

func TestWorkflow_PartialNightRoundsUp(t *testing.T) {
	details := validDetails()
	details.CheckOut = details.CheckOut.Add(time.Hour)

	flow := workflow.New()
	require.NoError(t, flow.ProvideDetails(details))
	require.NoError(t, flow.SelectPayment(constant.PaymentMethodCard))

	booking, err := flow.Submit(time.Now())
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Nights)
	assert.InDelta(t, 5400, booking.TotalPrice, 0.001)
}

func TestWorkflow_DistinctBookingIDs(t *testing.T) {
	now := time.Now()

	first := submitAt(t, now)
	second := submitAt(t, now.Add(time.Millisecond))

	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, strings.HasPrefix(first.BookingID, "BK"))
}

func submitAt(t *testing.T, now time.Time) model.Booking {
	t.Helper()

	flow := workflow.New()
	require.NoError(t, flow.ProvideDetails(validDetails()))
	require.NoError(t, flow.SelectPayment(constant.PaymentMethodNetBanking))

	booking, err := flow.Submit(now)
	require.NoError(t, err)

	return booking
}

func TestWorkflow_RejectsBadDetails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*workflow.StayDetails)
	}{
		{
			name: "check-out before check-in",
			mutate: func(d *workflow.StayDetails) {
				d.CheckOut = d.CheckIn.Add(-24 * time.Hour)
			},
		},
		{
			name: "check-out equals check-in",
			mutate: func(d *workflow.StayDetails) {
				d.CheckOut = d.CheckIn
			},
		},
		{
			name: "zero guests",
			mutate: func(d *workflow.StayDetails) {
				d.Guests = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validDetails()
			tt.mutate(&details)

			flow := workflow.New()
			err := flow.ProvideDetails(details)

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, workflow.StateCollectingDetails, flow.State())
		})
	}
}

func TestWorkflow_RejectsUnknownPaymentMethod(t *testing.T) {
	flow := workflow.New()
	require.NoError(t, flow.ProvideDetails(validDetails()))

	err := flow.SelectPayment("Cheque")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, workflow.StateSelectingPayment, flow.State())
}

func TestWorkflow_EnforcesOrdering(t *testing.T) {
	t.Run("payment before details", func(t *testing.T) {
		flow := workflow.New()

		err := flow.SelectPayment(constant.PaymentMethodUPI)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("submit before payment", func(t *testing.T) {
		flow := workflow.New()
		require.NoError(t, flow.ProvideDetails(validDetails()))

		_, err := flow.Submit(time.Now())

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("double submit", func(t *testing.T) {
		flow := workflow.New()
		require.NoError(t, flow.ProvideDetails(validDetails()))
		require.NoError(t, flow.SelectPayment(constant.PaymentMethodUPI))

		_, err := flow.Submit(time.Now())
		require.NoError(t, err)

		_, err = flow.Submit(time.Now())

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}
