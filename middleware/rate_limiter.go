package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tablebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = time.Minute
	// A limiter idle this long has refilled its whole budget, so dropping
	// it loses nothing.
	limiterIdleTimeout = 3 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a map of client IP addresses to their rate limiters.
type rateLimiterStore struct {
	clients   map[string]*clientLimiter
	mu        sync.Mutex
	perMinute int
	now       func() time.Time
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	if perMinute <= 0 {
		perMinute = 100
	}
	return &rateLimiterStore{
		clients:   make(map[string]*clientLimiter),
		perMinute: perMinute,
		now:       time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, exists := s.clients[ip]
	if !exists {
		// perMinute tokens refill evenly over a minute; the whole budget may be spent at once.
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMinute)), s.perMinute),
		}
		s.clients[ip] = client
	}
	client.lastSeen = s.now()
	return client.limiter
}

// sweep drops limiters not used within idle and returns how many it removed.
func (s *rateLimiterStore) sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for ip, client := range s.clients {
		if client.lastSeen.Before(cutoff) {
			delete(s.clients, ip)
			removed++
		}
	}
	return removed
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// runSweeper sweeps every interval until ctx is done.
func (s *rateLimiterStore) runSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(idle)
		}
	}
}

// RateLimitMiddleware limits requests per client IP to perMinute. Idle
// clients are forgotten by a sweeper that runs until ctx is done.
func RateLimitMiddleware(ctx context.Context, perMinute int) gin.HandlerFunc {
	store := newRateLimiterStore(perMinute)
	go store.runSweeper(ctx, limiterSweepInterval, limiterIdleTimeout)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			LoggerFrom(c, nil).Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.ErrorResponse{
				Error: "Rate limit exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
