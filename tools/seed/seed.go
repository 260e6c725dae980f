package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tablebook/models"
	"tablebook/services/booking"
)

var demoNames = []string{"Ada", "Grace", "Linus", "Margaret", "Ken", "Barbara", "Dennis", "Frances"}

// seedBookings books between 3 and 7 distinct slots on each of the days
// starting at from. Slots that are already taken are counted as skipped.
func seedBookings(ctx context.Context, svc booking.BookingService, from time.Time, days int, rng *rand.Rand) (inserted, skipped int, err error) {
	slots := svc.Slots()
	if len(slots) == 0 {
		return 0, 0, errors.New("no bookable slots")
	}

	for d := 0; d < days; d++ {
		date := from.AddDate(0, 0, d).Format("2006-01-02")
		perDay := 3 + rng.Intn(5)
		if perDay > len(slots) {
			perDay = len(slots)
		}
		for _, i := range rng.Perm(len(slots))[:perDay] {
			name := demoNames[rng.Intn(len(demoNames))]
			details := models.GuestDetails{
				Name:   name,
				Email:  fmt.Sprintf("%s%d@example.com", name, rng.Intn(1000)),
				Phone:  fmt.Sprintf("555%07d", rng.Intn(10000000)),
				Guests: 1 + rng.Intn(6),
			}
			if _, err := svc.Create(ctx, date, slots[i], details); err != nil {
				var booked *booking.SlotAlreadyBookedError
				if errors.As(err, &booked) {
					skipped++
					continue
				}
				return inserted, skipped, err
			}
			inserted++
		}
	}
	return inserted, skipped, nil
}
