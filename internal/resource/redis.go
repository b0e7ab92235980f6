package resource

import (
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	mainRedis   *redis.Client
	redisOnce   sync.Once
	redisSetAny bool
)

// SetMainRedis sets the global Redis client. Unlike the DB handle,
// Redis is optional: when it is never set, MainRedis returns nil and
// callers degrade to uncached behavior.
func SetMainRedis(cli *redis.Client) {
	if cli == nil {
		return
	}
	redisOnce.Do(func() {
		mainRedis = cli
		redisSetAny = true
	})
}

// MainRedis returns the Redis client or nil when Redis is unavailable.
func MainRedis() *redis.Client {
	if !redisSetAny {
		return nil
	}
	return mainRedis
}
