// Command seed fills the bookings collection with demo reservations for the
// next seven days.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"tablebook/config"
	"tablebook/database"
	"tablebook/database/repository"
	"tablebook/services/booking"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Disconnect(context.Background(), client)

	db := client.Database(cfg.DatabaseName)

	// Clear existing bookings.
	if _, err := db.Collection("bookings").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear bookings collection: %v", err)
	}

	mode, err := booking.ParseWriteMode(cfg.BookingWriteMode)
	if err != nil {
		log.Fatal(err)
	}
	repo := repository.NewMongoBookingRepo(db, cfg.StoreTimeout)
	if err := repo.EnsureIndexes(ctx, mode.UniqueSlots()); err != nil {
		log.Fatal(err)
	}

	hours := booking.OperatingHours{OpenHour: cfg.OpenHour, CloseHour: cfg.CloseHour, SlotMinutes: cfg.SlotMinutes}
	svc, err := booking.NewBookingService(repo, hours, mode, nil, nil)
	if err != nil {
		log.Fatalf("Invalid operating hours %+v: %v", hours, err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	inserted, skipped, err := seedBookings(ctx, svc, today, 7, rng)
	if err != nil {
		log.Fatalf("Failed to insert booking: %v", err)
	}
	fmt.Printf("Inserted %d bookings (%d taken slots skipped)\n", inserted, skipped)
}
