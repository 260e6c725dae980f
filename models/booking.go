package models

import "time"

// GuestDetails are the booking attributes stored as given and never inspected
// by the booking rules.
type GuestDetails struct {
	Name            string `bson:"name" json:"name"`
	Email           string `bson:"email,omitempty" json:"email,omitempty"`
	Phone           string `bson:"phone,omitempty" json:"phone,omitempty"`
	Guests          int    `bson:"guests,omitempty" json:"guests,omitempty"`
	SpecialRequests string `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
}

// Booking represents a confirmed table reservation.
type Booking struct {
	ID           string    `bson:"id" json:"id"`     // UUID assigned on insert
	Date         time.Time `bson:"date" json:"date"` // Midnight UTC of the booked day
	Time         string    `bson:"time" json:"time"` // Slot label, e.g. "19:30"
	GuestDetails `bson:",inline"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the body of POST /api/bookings. Only date and time are
// checked; the guest fields are stored as sent and unknown fields are ignored.
type BookingRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

// Details extracts the pass-through part of the request.
func (r BookingRequest) Details() GuestDetails {
	return GuestDetails{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}
}

// AvailabilityResponse is returned by GET /api/availability.
type AvailabilityResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// BookingResponse wraps a booking with a human readable outcome.
type BookingResponse struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking"`
}
