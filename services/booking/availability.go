package booking

import (
	"context"

	"go.uber.org/zap"
)

// Slots returns the full slot vocabulary of an operating day.
func (s *DefaultBookingService) Slots() []string {
	return s.Hours.Slots()
}

// Availability returns the day's slots that have no booking yet, in slot order.
func (s *DefaultBookingService) Availability(ctx context.Context, rawDate string) ([]string, error) {
	day, err := NormalizeDate(rawDate)
	if err != nil {
		return nil, err
	}

	if slots, ok, err := s.Cache.Get(ctx, day); err != nil {
		s.Logger.Warn("availability cache read failed", zap.Time("date", day), zap.Error(err))
	} else if ok {
		return slots, nil
	}

	// Taken before the store read so a booking written meanwhile voids the
	// cache write below.
	gen, genErr := s.Cache.Generation(ctx, day)
	if genErr != nil {
		s.Logger.Warn("availability cache generation read failed", zap.Time("date", day), zap.Error(genErr))
	}

	from, to := dayBounds(day)
	bookings, err := s.Repo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, storeError("query bookings by date", err)
	}

	booked := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		booked[b.Time] = struct{}{}
	}

	available := []string{}
	for _, slot := range s.Hours.Slots() {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	if genErr == nil {
		if err := s.Cache.Set(ctx, day, gen, available); err != nil {
			s.Logger.Warn("availability cache write failed", zap.Time("date", day), zap.Error(err))
		}
	}
	return available, nil
}
