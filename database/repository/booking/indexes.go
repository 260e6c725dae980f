// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	slotIndexName       = "date_time_idx"
	uniqueSlotIndexName = "unique_date_time"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
// Both write modes index the same keys, so the other mode's index is dropped
// first; MongoDB refuses two indexes on one key pattern.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context, uniqueSlots bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stale := uniqueSlotIndexName
	if uniqueSlots {
		stale = slotIndexName
	}
	if _, err := r.coll.Indexes().DropOne(ctx, stale); err != nil && !isMissingIndex(err) {
		return fmt.Errorf("failed to drop index %s: %w", stale, err)
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels(uniqueSlots))
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// isMissingIndex reports a drop of an index or collection that does not exist.
func isMissingIndex(err error) bool {
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	switch cmdErr.Code {
	case 26, 27: // NamespaceNotFound, IndexNotFound
		return true
	}
	return false
}

func indexModels(uniqueSlots bool) []mongo.IndexModel {
	// Serves the day range scan and the slot lookup.
	slotIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
		Options: options.Index().SetName(slotIndexName),
	}
	if uniqueSlots {
		slotIndex.Options = options.Index().SetUnique(true).SetName(uniqueSlotIndexName)
	}

	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		slotIndex,
	}
}
