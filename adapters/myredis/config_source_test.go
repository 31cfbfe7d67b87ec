package myredis

import (
	"context"
	"testing"
	"time"

	"zonekeeper/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"
const testConfigKey = "zonekeeper:test:config"

func setupTestRedis(t *testing.T) (redis.UniversalClient, func()) {
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis is not available at %s: %v", testRedisAddr, err)
	}
	client.Del(ctx, testConfigKey)

	cleanup := func() {
		client.Del(context.Background(), testConfigKey)
		client.Close()
	}
	return client, cleanup
}

func TestLoadHashSource(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	require.NoError(t, client.HSet(ctx, testConfigKey,
		"ensemble.host", "zk-1:2379",
		"zone.z1.max_agents", "5",
	).Err())

	src, err := LoadHashSource(ctx, client, testConfigKey)
	require.NoError(t, err)

	v, ok := src.Lookup("ensemble.host")
	assert.True(t, ok)
	assert.Equal(t, "zk-1:2379", v)
	v, ok = src.Lookup("zone.z1.max_agents")
	assert.True(t, ok)
	assert.Equal(t, "5", v)

	require.NoError(t, client.HSet(ctx, testConfigKey, "ensemble.host", "changed:2379").Err())
	v, _ = src.Lookup("ensemble.host")
	assert.Equal(t, "zk-1:2379", v, "snapshot is not refreshed")
}

func TestLoadHashSource_MissingHash(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	src, err := LoadHashSource(context.Background(), client, testConfigKey)
	require.NoError(t, err)
	assert.Empty(t, src)
}

func TestLoadHashSource_Unreachable(t *testing.T) {
	client, err := NewRedisUniversalClient("redis://127.0.0.1:1", func(o *redis.Options) {
		o.DialTimeout = 100 * time.Millisecond
		o.MaxRetries = -1
	})
	require.NoError(t, err)
	defer client.Close()

	_, err = LoadHashSource(context.Background(), client, DefaultConfigKey)
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
