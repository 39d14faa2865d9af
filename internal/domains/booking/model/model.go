package model

import (
	"time"
)

const (
	EntityName     = "booking"
	CollectionName = "bookings"

	FieldBookingID  = "booking_id"
	FieldGuestName  = "guest_name"
	FieldGuestEmail = "guest_email"
	FieldHotelName  = "hotel_name"
	FieldStatus     = "status"
	FieldCreatedAt  = "created_at"

	// HandoffKeyPrefix addresses the single-read confirmation slot.
	HandoffKeyPrefix = "handoff"
)

// Booking is the immutable snapshot persisted at submission time. Room
// name and price are copied in, not referenced, so later catalog changes
// never alter a past booking.
type Booking struct {
	ID            string    `bson:"_id"            json:"id"`
	BookingID     string    `bson:"booking_id"     json:"bookingId"`
	GuestName     string    `bson:"guest_name"     json:"guestName"`
	GuestEmail    string    `bson:"guest_email"    json:"guestEmail"`
	GuestPhone    string    `bson:"guest_phone"    json:"guestPhone"`
	CheckIn       string    `bson:"check_in"       json:"checkIn"`
	CheckOut      string    `bson:"check_out"      json:"checkOut"`
	Guests        int       `bson:"guests"         json:"guests"`
	RoomID        string    `bson:"room_id"        json:"roomId"`
	RoomName      string    `bson:"room_name"      json:"roomName"`
	RoomPrice     float64   `bson:"room_price"     json:"roomPrice"`
	HotelName     string    `bson:"hotel_name"     json:"hotelName"`
	PaymentMethod string    `bson:"payment_method" json:"paymentMethod"`
	Nights        int       `bson:"nights"         json:"nights"`
	TotalPrice    float64   `bson:"total_price"    json:"totalPrice"`
	Status        string    `bson:"status"         json:"status"`
	CreatedAt     time.Time `bson:"created_at"     json:"createdAt"`
}

// ListFilter narrows the admin listing. Search matches guest name, guest
// email, booking id and hotel name, case-insensitively.
type ListFilter struct {
	Status string
	Search string
}
