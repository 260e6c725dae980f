package booking

import (
	"context"
	"time"
)

// AvailabilityCache stores computed availability per normalized date.
//
// Every create or delete bumps the date's generation. A reader takes the
// generation before it queries the store and hands it back to Set, which
// drops the write if the generation moved in between.
type AvailabilityCache interface {
	// Get returns the cached slots and true on a hit.
	Get(ctx context.Context, day time.Time) ([]string, bool, error)
	// Generation returns the current write generation for day.
	Generation(ctx context.Context, day time.Time) (int64, error)
	// Set stores slots computed at generation gen, unless a write has
	// bumped the generation since.
	Set(ctx context.Context, day time.Time, gen int64, slots []string) error
	// Invalidate bumps the generation and drops the cached slots.
	Invalidate(ctx context.Context, day time.Time) error
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, time.Time) ([]string, bool, error) { return nil, false, nil }
func (NoopCache) Generation(context.Context, time.Time) (int64, error) { return 0, nil }
func (NoopCache) Set(context.Context, time.Time, int64, []string) error { return nil }
func (NoopCache) Invalidate(context.Context, time.Time) error { return nil }
