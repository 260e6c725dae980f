package booking

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
}

// NormalizeDate parses raw and returns midnight UTC of that day.
func NormalizeDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &InvalidDateError{Input: raw}
	}

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, &InvalidDateError{Input: raw, Err: lastErr}
}

// dayBounds returns [day, day+24h) for a normalized date.
func dayBounds(day time.Time) (time.Time, time.Time) {
	return day, day.Add(24 * time.Hour)
}
