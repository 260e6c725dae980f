package repository

import (
	bookingRepo "tablebook/database/repository/booking"
)

// Re-export the BookingRepository interface, constructor and sentinel errors.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

var (
	ErrBookingNotFound = bookingRepo.ErrNotFound
	ErrDuplicateSlot   = bookingRepo.ErrDuplicateSlot
)
