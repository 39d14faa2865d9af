package dto

import (
	"time"

	"wakens/internal/domains/booking/model"
)

// CreateBookingRequest carries the guest form plus the payment-method
// selection. Room name, price and hotel name are looked up server-side
// from the catalog; the caller only names the room.
type CreateBookingRequest struct {
	GuestName     string `json:"guestName"     validate:"required,max=100"`
	GuestEmail    string `json:"guestEmail"    validate:"required,email"`
	GuestPhone    string `json:"guestPhone"    validate:"required,max=32"`
	CheckIn       string `json:"checkIn"       validate:"required,datetime=2006-01-02"`
	CheckOut      string `json:"checkOut"      validate:"required,datetime=2006-01-02,afterdatefield=CheckIn"`
	Guests        int    `json:"guests"        validate:"required,min=1"`
	RoomID        string `json:"roomId"        validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=UPI Card 'Net Banking'"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestPhone    string    `json:"guestPhone"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Guests        int       `json:"guests"`
	RoomID        string    `json:"roomId"`
	RoomName      string    `json:"roomName"`
	RoomPrice     float64   `json:"roomPrice"`
	HotelName     string    `json:"hotelName"`
	PaymentMethod string    `json:"paymentMethod"`
	Nights        int       `json:"nights"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.BookingID = model.BookingID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.GuestPhone = model.GuestPhone
	b.CheckIn = model.CheckIn
	b.CheckOut = model.CheckOut
	b.Guests = model.Guests
	b.RoomID = model.RoomID
	b.RoomName = model.RoomName
	b.RoomPrice = model.RoomPrice
	b.HotelName = model.HotelName
	b.PaymentMethod = model.PaymentMethod
	b.Nights = model.Nights
	b.TotalPrice = model.TotalPrice
	b.Status = model.Status
	b.CreatedAt = model.CreatedAt
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking) {
	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}

	g.Count = len(models)
}
