package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "tablebook/database/repository/booking"
	"tablebook/models"

	"go.uber.org/zap"
)

// Create books slot on the day of rawDate.
func (s *DefaultBookingService) Create(ctx context.Context, rawDate, slot string, details models.GuestDetails) (*models.Booking, error) {
	day, err := NormalizeDate(rawDate)
	if err != nil {
		return nil, err
	}
	if !s.Hours.Contains(slot) {
		return nil, &InvalidSlotError{Time: slot}
	}

	if s.Mode == WriteModeCheckThenWrite {
		taken, err := s.Repo.ExistsForSlot(ctx, day, slot)
		if err != nil {
			return nil, storeError("check slot", err)
		}
		if taken {
			return nil, &SlotAlreadyBookedError{Date: day, Time: slot}
		}
	}

	booking := &models.Booking{
		Date:         day,
		Time:         slot,
		GuestDetails: details,
	}
	if err := s.Repo.Insert(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, &SlotAlreadyBookedError{Date: day, Time: slot}
		}
		return nil, storeError("insert booking", err)
	}

	s.invalidate(ctx, day)
	s.Logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.Time("date", day),
		zap.String("time", slot),
	)
	return booking, nil
}

// List returns all bookings ordered by date then time.
func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return bookings, nil
}

// GetByID returns the booking with the given id.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, storeError("get booking", err)
	}
	return booking, nil
}

// DeleteByID removes the booking with the given id and returns it.
func (s *DefaultBookingService) DeleteByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, storeError("delete booking", err)
	}

	s.invalidate(ctx, booking.Date)
	s.Logger.Info("booking deleted", zap.String("id", id))
	return booking, nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, day time.Time) {
	if err := s.Cache.Invalidate(ctx, day); err != nil {
		s.Logger.Warn("availability cache invalidation failed", zap.Time("date", day), zap.Error(err))
	}
}
