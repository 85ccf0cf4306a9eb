package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus names the dependencies this service runs on: the resource
// and booking store, and the two Redis clients (generic cache and proposal
// session cache).
type HealthStatus struct {
	Mongo        bool      `json:"mongo"`
	CacheRedis   bool      `json:"cacheRedis"`
	SessionRedis bool      `json:"sessionRedis"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func checkHealth(ctx context.Context, cacheClient, sessionClient *redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if cacheClient != nil {
		status.CacheRedis = cacheClient.Ping(ctx).Err() == nil
	}
	if sessionClient != nil {
		status.SessionRedis = sessionClient.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// StartHealthMonitor checks the dependencies once immediately and then on
// the given interval (60s when non-positive), keeping the in-memory
// snapshot behind /health current.
func StartHealthMonitor(cacheClient, sessionClient *redis.Client, mongoClient *mongo.Client, interval time.Duration) {
	if interval <= 0 {
		interval = 60 * time.Second
	}

	go func() {
		ctx := context.Background()
		checkHealth(ctx, cacheClient, sessionClient, mongoClient)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			checkHealth(ctx, cacheClient, sessionClient, mongoClient)
		}
	}()
}
