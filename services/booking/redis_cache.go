package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	availabilityPrefix = "availability:"
	generationPrefix   = "availability:gen:"
)

// RedisAvailabilityCache keeps computed availability in Redis for a short TTL.
// Generation counters have no TTL so a bump is never forgotten while a
// reader still holds an older value.
type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(day time.Time) string {
	return availabilityPrefix + day.UTC().Format("2006-01-02")
}

func generationKey(day time.Time) string {
	return generationPrefix + day.UTC().Format("2006-01-02")
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, day time.Time) ([]string, bool, error) {
	data, err := c.client.Get(ctx, availabilityKey(day)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var slots []string
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false, err
	}
	return slots, true, nil
}

func (c *RedisAvailabilityCache) Generation(ctx context.Context, day time.Time) (int64, error) {
	return readGeneration(ctx, c.client, generationKey(day))
}

// Set writes slots inside a WATCH on the generation key, so a concurrent
// Invalidate aborts the write.
func (c *RedisAvailabilityCache) Set(ctx context.Context, day time.Time, gen int64, slots []string) error {
	b, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	genKey := generationKey(day)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, genKey)
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, availabilityKey(day), b, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, day time.Time) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(day))
		pipe.Del(ctx, availabilityKey(day))
		return nil
	})
	return err
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, r getter, key string) (int64, error) {
	gen, err := r.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}
