package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisCache(t *testing.T) (*RedisAvailabilityCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisAvailabilityCache(client, time.Minute), srv
}

func TestAvailabilityKey(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "availability:2025-06-01", availabilityKey(d))
	assert.Equal(t, "availability:gen:2025-06-01", generationKey(d))
}

func TestRedisAvailabilityCache_SetAndGet(t *testing.T) {
	cache, srv := newMiniredisCache(t)
	ctx := context.Background()
	d := day(2025, 6, 1)

	_, hit, err := cache.Get(ctx, d)
	require.NoError(t, err)
	assert.False(t, hit)

	gen, err := cache.Generation(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, cache.Set(ctx, d, gen, []string{"11:00", "11:30"}))
	slots, hit, err := cache.Get(ctx, d)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"11:00", "11:30"}, slots)
	assert.Equal(t, time.Minute, srv.TTL(availabilityKey(d)))
}

func TestRedisAvailabilityCache_InvalidateVoidsOlderGeneration(t *testing.T) {
	cache, srv := newMiniredisCache(t)
	ctx := context.Background()
	d := day(2025, 6, 1)

	gen, err := cache.Generation(ctx, d)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, d, gen, []string{"11:00"}))

	require.NoError(t, cache.Invalidate(ctx, d))
	assert.False(t, srv.Exists(availabilityKey(d)))

	next, err := cache.Generation(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)

	// A reader that started before the invalidation must not repopulate.
	require.NoError(t, cache.Set(ctx, d, gen, []string{"11:00"}))
	_, hit, err := cache.Get(ctx, d)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, d, next, []string{"11:30"}))
	slots, hit, err := cache.Get(ctx, d)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"11:30"}, slots)
}

func TestAvailability_BookingDuringReadIsNotCachedAsFreeInRedis(t *testing.T) {
	cache, _ := newMiniredisCache(t)

	available := bookDuringAvailabilityRead(t, newHeldReadRepo(), cache, "19:00")
	assert.NotContains(t, available, "19:00")

	cached, hit, err := cache.Get(context.Background(), day(2025, 6, 1))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.NotContains(t, cached, "19:00")
}

func TestRedisAvailabilityCache_UnreachableServerReportsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	cache := NewRedisAvailabilityCache(client, time.Minute)

	_, hit, err := cache.Get(context.Background(), time.Now())
	assert.Error(t, err)
	assert.False(t, hit)

	_, err = cache.Generation(context.Background(), time.Now())
	assert.Error(t, err)
}

// A failing cache never breaks availability: the store answer is returned.
func TestAvailability_IgnoresCacheFailures(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	svc, err := NewBookingService(&memRepo{unique: true}, DefaultHours, WriteModeAtomic,
		NewRedisAvailabilityCache(client, time.Minute), nil)
	assert.NoError(t, err)

	available, err := svc.Availability(context.Background(), "2025-06-01")
	assert.NoError(t, err)
	assert.Equal(t, DefaultHours.Slots(), available)

	_, err = svc.Create(context.Background(), "2025-06-01", "12:00", guest)
	assert.NoError(t, err)
}
