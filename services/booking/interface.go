package booking

import (
	"context"
	"fmt"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"

	"go.uber.org/zap"
)

// WriteMode selects how Create guards the one-booking-per-slot rule.
type WriteMode string

const (
	// WriteModeAtomic relies on the store's unique (date, time) index: a
	// single insert either succeeds or is rejected as a duplicate.
	WriteModeAtomic WriteMode = "atomic"
	// WriteModeCheckThenWrite queries for an existing booking and inserts in a
	// second round trip. Two concurrent requests for the same slot can both
	// pass the check. Use it only for stores without unique indexes.
	WriteModeCheckThenWrite WriteMode = "check-then-write"
)

// ParseWriteMode maps a configuration value to a WriteMode.
func ParseWriteMode(s string) (WriteMode, error) {
	switch WriteMode(s) {
	case WriteModeAtomic, "":
		return WriteModeAtomic, nil
	case WriteModeCheckThenWrite:
		return WriteModeCheckThenWrite, nil
	}
	return "", fmt.Errorf("unknown booking write mode %q", s)
}

// UniqueSlots reports whether the store must enforce slot uniqueness.
func (m WriteMode) UniqueSlots() bool {
	return m == WriteModeAtomic
}

// BookingService defines the operations behind the booking API.
type BookingService interface {
	Slots() []string
	Availability(ctx context.Context, rawDate string) ([]string, error)
	Create(ctx context.Context, rawDate, slot string, details models.GuestDetails) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Hours  OperatingHours
	Mode   WriteMode
	Cache  AvailabilityCache
	Logger *zap.Logger
}

// NewBookingService wires a DefaultBookingService. A nil cache disables
// availability caching and a nil logger discards logs.
func NewBookingService(repo bookingRepo.BookingRepository, hours OperatingHours, mode WriteMode, cache AvailabilityCache, logger *zap.Logger) (*DefaultBookingService, error) {
	if err := hours.Validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = NoopCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:   repo,
		Hours:  hours,
		Mode:   mode,
		Cache:  cache,
		Logger: logger,
	}, nil
}
