package workflow

import (
	"fmt"
	"math"
	"time"

	"wakens/internal/domains/booking/model"
	"wakens/shared/constant"
	"wakens/shared/failure"

	"github.com/google/uuid"
)

// State names the step a booking submission is currently in. Transitions
// only move forward; calling a step out of order is an error.
type State string

const (
	StateCollectingDetails State = "collecting_details"
	StateSelectingPayment  State = "selecting_payment"
	StateSubmitting        State = "submitting"
	StateDone              State = "done"
)

// StayDetails carries everything the guest provides plus the catalog data
// resolved for the chosen room. Prices are copied in here so the final
// snapshot is immune to later catalog edits.
type StayDetails struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	RoomID     string
	RoomName   string
	RoomPrice  float64
	HotelName  string
}

// Workflow assembles one booking snapshot step by step. It holds no
// external dependencies; persistence and notification happen after Submit.
type Workflow struct {
	state   State
	details StayDetails
	payment string
}

func New() *Workflow {
	return &Workflow{state: StateCollectingDetails}
}

func (w *Workflow) State() State {
	return w.state
}

// ProvideDetails validates the stay and moves the workflow to payment
// selection. Check-out must fall strictly after check-in.
func (w *Workflow) ProvideDetails(details StayDetails) error {
	if w.state != StateCollectingDetails {
		return failure.Conflict(fmt.Sprintf("cannot provide details in state %s", w.state))
	}

	if !details.CheckOut.After(details.CheckIn) {
		return failure.BadRequestFromString("check-out date must be after check-in date")
	}

	if details.Guests <= 0 {
		return failure.BadRequestFromString("guest count must be at least 1")
	}

	w.details = details
	w.state = StateSelectingPayment

	return nil
}

// SelectPayment records the payment method. Selecting a method counts as a
// successful payment; there is no charge step behind it.
func (w *Workflow) SelectPayment(method string) error {
	if w.state != StateSelectingPayment {
		return failure.Conflict(fmt.Sprintf("cannot select payment in state %s", w.state))
	}

	switch method {
	case constant.PaymentMethodUPI, constant.PaymentMethodCard, constant.PaymentMethodNetBanking:
	default:
		return failure.BadRequestFromString(fmt.Sprintf("unsupported payment method: %s", method))
	}

	w.payment = method
	w.state = StateSubmitting

	return nil
}

// Submit finalizes the booking and returns the immutable snapshot. Partial
// nights count as full ones, so a stay of 2 days and 1 hour bills 3 nights.
func (w *Workflow) Submit(now time.Time) (model.Booking, error) {
	if w.state != StateSubmitting {
		return model.Booking{}, failure.Conflict(fmt.Sprintf("cannot submit booking in state %s", w.state))
	}

	nights := int(math.Ceil(w.details.CheckOut.Sub(w.details.CheckIn).Hours() / 24))

	booking := model.Booking{
		ID:            uuid.NewString(),
		BookingID:     fmt.Sprintf("BK%d", now.UnixMilli()),
		GuestName:     w.details.GuestName,
		GuestEmail:    w.details.GuestEmail,
		GuestPhone:    w.details.GuestPhone,
		CheckIn:       w.details.CheckIn.Format(constant.StayDateFormat),
		CheckOut:      w.details.CheckOut.Format(constant.StayDateFormat),
		Guests:        w.details.Guests,
		RoomID:        w.details.RoomID,
		RoomName:      w.details.RoomName,
		RoomPrice:     w.details.RoomPrice,
		HotelName:     w.details.HotelName,
		PaymentMethod: w.payment,
		Nights:        nights,
		TotalPrice:    float64(nights) * w.details.RoomPrice,
		Status:        constant.BookingStatusConfirmed,
		CreatedAt:     now,
	}

	w.state = StateDone

	return booking, nil
}
