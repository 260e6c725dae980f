package booking

import (
	"fmt"
)

// OperatingHours describes one operating day: slots start at OpenHour:00 and
// the last one is CloseHour:00.
type OperatingHours struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
}

// DefaultHours is 11:00 to 22:00 in half-hour slots.
var DefaultHours = OperatingHours{OpenHour: 11, CloseHour: 22, SlotMinutes: 30}

// Validate rejects hours that cannot produce a slot sequence.
func (h OperatingHours) Validate() error {
	if h.OpenHour < 0 || h.OpenHour > 23 || h.CloseHour < 0 || h.CloseHour > 23 {
		return fmt.Errorf("operating hours must be within 0-23, got %d-%d", h.OpenHour, h.CloseHour)
	}
	if h.OpenHour > h.CloseHour {
		return fmt.Errorf("opening hour %d is after closing hour %d", h.OpenHour, h.CloseHour)
	}
	if h.SlotMinutes <= 0 || 60%h.SlotMinutes != 0 {
		return fmt.Errorf("slot length %d minutes does not divide an hour", h.SlotMinutes)
	}
	return nil
}

// Slots returns every bookable label for the day in ascending order.
func (h OperatingHours) Slots() []string {
	if h.Validate() != nil {
		return nil
	}
	first, last := h.OpenHour*60, h.CloseHour*60
	slots := make([]string, 0, (last-first)/h.SlotMinutes+1)
	for m := first; m <= last; m += h.SlotMinutes {
		slots = append(slots, slotLabel(m))
	}
	return slots
}

// Contains reports whether label is one of the day's slots.
func (h OperatingHours) Contains(label string) bool {
	for _, s := range h.Slots() {
		if s == label {
			return true
		}
	}
	return false
}

func slotLabel(minuteOfDay int) string {
	return fmt.Sprintf("%d:%02d", minuteOfDay/60, minuteOfDay%60)
}
