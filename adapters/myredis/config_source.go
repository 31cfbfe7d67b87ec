package myredis

import (
	"context"
	"fmt"

	"zonekeeper/config"
	"zonekeeper/service"

	"github.com/go-redis/redis/v8"
)

// DefaultConfigKey is the hash holding shared properties when CONFIG_REDIS_KEY is not set.
const DefaultConfigKey = "zonekeeper:config"

// LoadHashSource reads every field of the hash at key into a property snapshot.
// Field names are dotted property keys ("zone.z1.max_agents"), values are raw strings.
// A missing hash yields an empty snapshot; properties are read once at startup and never refreshed.
func LoadHashSource(ctx context.Context, client redis.UniversalClient, key string) (config.MapSource, error) {
	fields, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis read config error", fmt.Errorf("can't read config hash (key='%s'), err: %w", key, err))
	}
	return config.MapSource(fields), nil
}
