// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrDuplicateSlot is returned by Insert when the unique (date, time)
	// index rejects the document.
	ErrDuplicateSlot = errors.New("booking slot already taken")
)

// BookingRepository defines data access for the bookings collection.
type BookingRepository interface {
	// FindByDateRange returns bookings with from <= date < to.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Booking, error)
	// ExistsForSlot reports whether a booking exists for the day starting at
	// date with the given slot label.
	ExistsForSlot(ctx context.Context, date time.Time, slot string) (bool, error)
	// Insert assigns an id and creation time and stores the booking.
	Insert(ctx context.Context, booking *models.Booking) error
	// List returns every booking ordered by date then time.
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// DeleteByID removes the booking and returns the removed document.
	DeleteByID(ctx context.Context, id string) (*models.Booking, error)
	// EnsureIndexes creates the collection indexes. With uniqueSlots the
	// (date, time) index is unique and Insert enforces one booking per slot.
	EnsureIndexes(ctx context.Context, uniqueSlots bool) error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBookingRepo constructs a BookingRepository on db's "bookings"
// collection. Every call is bounded by timeout.
func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) BookingRepository {
	return newMongoBookingRepo(db.Collection("bookings"), timeout)
}

func newMongoBookingRepo(coll *mongo.Collection, timeout time.Duration) *MongoBookingRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoBookingRepo{coll: coll, timeout: timeout}
}

func (r *MongoBookingRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}
