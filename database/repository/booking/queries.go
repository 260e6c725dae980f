// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func dayFilter(from, to time.Time) bson.M {
	return bson.M{"$gte": from, "$lt": to}
}

// FindByDateRange returns all bookings whose date falls in [from, to).
func (r *MongoBookingRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": dayFilter(from, to)})
	if err != nil {
		return nil, fmt.Errorf("error finding bookings between %s and %s: %w",
			from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ExistsForSlot looks for any booking on the day starting at date with the
// given slot label.
func (r *MongoBookingRepo) ExistsForSlot(ctx context.Context, date time.Time, slot string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.M{
		"date": dayFilter(date, date.Add(24*time.Hour)),
		"time": slot,
	}
	opts := options.FindOne().SetProjection(bson.M{"id": 1})

	var found bson.M
	err := r.coll.FindOne(ctx, filter, opts).Decode(&found)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking slot %s: %w", slot, err)
	}
	return true, nil
}

// List returns all bookings sorted by date and time ascending.
func (r *MongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
