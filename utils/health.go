package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string    `json:"status"`
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings the store and cache connections.
type HealthMonitor struct {
	mongoClient  *mongo.Client
	redisClients []*redis.Client
	interval     time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(mongoClient *mongo.Client, redisClients []*redis.Client, interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &HealthMonitor{
		mongoClient:  mongoClient,
		redisClients: redisClients,
		interval:     interval,
		current:      HealthStatus{Status: "starting", Redis: []bool{}},
	}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	redisHealth := make([]bool, 0, len(m.redisClients))
	for _, client := range m.redisClients {
		redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
	}

	mongoHealthy := m.mongoClient != nil && m.mongoClient.Ping(ctx, nil) == nil

	status := "ok"
	if !mongoHealthy {
		status = "degraded"
	}
	for _, up := range redisHealth {
		if !up {
			status = "degraded"
		}
	}

	snapshot := HealthStatus{
		Status:    status,
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now().UTC(),
	}
	m.mu.Lock()
	m.current = snapshot
	m.mu.Unlock()
	return snapshot
}

// Start runs Check immediately and then every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	go func() {
		m.Check(ctx)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
