package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := newTestRouter(RateLimitMiddleware(ctx, 2))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1001").Code)

	w := get(r, "10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")

	// Budgets are per client.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:1000").Code)
}

func TestNewRateLimiterStoreDefault(t *testing.T) {
	s := newRateLimiterStore(0)
	assert.Equal(t, 100, s.perMinute)
	assert.Same(t, s.getLimiter("a"), s.getLimiter("a"))
}

func TestRateLimiterStoreSweepDropsIdleClients(t *testing.T) {
	s := newRateLimiterStore(10)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.getLimiter("10.0.0.1")
	now = now.Add(2 * time.Minute)
	s.getLimiter("10.0.0.2")
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, s.sweep(3*time.Minute))
	assert.Equal(t, 1, s.size())

	// A returning client starts with a fresh full budget.
	l := s.getLimiter("10.0.0.1")
	assert.Equal(t, 2, s.size())
	assert.InDelta(t, 10, l.TokensAt(now), 0.001)
}

func TestRateLimiterStoreSweeperStopsWithContext(t *testing.T) {
	s := newRateLimiterStore(10)
	s.getLimiter("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.runSweeper(ctx, 5*time.Millisecond, 0)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.size() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}

func TestLoggerFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fallback := zap.NewNop()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, fallback, LoggerFrom(c, fallback))
	assert.Same(t, zap.L(), LoggerFrom(c, nil))

	scoped := zap.NewExample()
	c.Set(LoggerKey, scoped)
	assert.Same(t, scoped, LoggerFrom(c, fallback))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newTestRouter(RequestLogger(zap.New(core)))

	w := get(r, "10.0.0.3:1000")
	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)

	entries := logs.FilterMessage("request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, requestID, fields["requestId"])
		assert.Equal(t, "/ping", fields["path"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	}
}

func TestRequestLoggerKeepsIncomingID(t *testing.T) {
	core, _ := observer.New(zap.InfoLevel)
	r := newTestRouter(RequestLogger(zap.New(core)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
