package utils

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealthReportsNamedDependencies(t *testing.T) {
	// Unreachable clients: every dependency must report unhealthy rather
	// than panic or stay stale.
	dead := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer dead.Close()

	checkHealth(context.Background(), dead, dead, nil)

	got := GetHealthStatus()
	assert.False(t, got.Mongo)
	assert.False(t, got.CacheRedis)
	assert.False(t, got.SessionRedis)
	assert.False(t, got.CheckedAt.IsZero())
}

func TestCheckHealthNilClients(t *testing.T) {
	checkHealth(context.Background(), nil, nil, nil)

	got := GetHealthStatus()
	assert.False(t, got.CacheRedis)
	assert.False(t, got.SessionRedis)
	assert.False(t, got.Mongo)
}
