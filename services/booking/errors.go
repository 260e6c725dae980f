package booking

import (
	"fmt"
	"time"
)

// InvalidDateError is returned when a date input cannot be parsed.
type InvalidDateError struct {
	Input string
	Err   error
}

func (e *InvalidDateError) Error() string {
	if e.Input == "" {
		return "date is required"
	}
	return fmt.Sprintf("invalid date %q", e.Input)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// InvalidSlotError is returned when a time label is not one of the day's slots.
type InvalidSlotError struct {
	Time string
}

func (e *InvalidSlotError) Error() string {
	return fmt.Sprintf("invalid time slot %q", e.Time)
}

// SlotAlreadyBookedError reports a second booking for an occupied slot.
type SlotAlreadyBookedError struct {
	Date time.Time
	Time string
}

func (e *SlotAlreadyBookedError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked", e.Time, e.Date.Format("2006-01-02"))
}

// NotFoundError is returned when no booking has the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// StoreError wraps a failure of the underlying store. Op names the operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
