package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"biblioteca-service/ddd/application/dto"
	"biblioteca-service/internal/resource"
	"biblioteca-service/pkg/logger"
)

const snapshotKey = "biblioteca:notification:snapshot"

// NotificationCache keeps the last derived notification payload in
// Redis so repeated badge polls do not re-query MySQL. Every operation
// degrades silently when Redis is absent or failing: caching is an
// optimisation, never a correctness dependency.
type NotificationCache struct {
	cli *redis.Client
	ttl time.Duration
}

// NewNotificationCache builds a cache over the global Redis handle,
// which may be nil in single-instance dev setups.
func NewNotificationCache(ttl time.Duration) *NotificationCache {
	return &NotificationCache{cli: resource.MainRedis(), ttl: ttl}
}

// Get returns the cached snapshot and whether it was present.
func (c *NotificationCache) Get(ctx context.Context) (*dto.NotificationsResponse, bool) {
	if c == nil || c.cli == nil {
		return nil, false
	}
	body, err := c.cli.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithContext(ctx).Warnf("notification cache: get failed error=%v", err)
		}
		return nil, false
	}
	var resp dto.NotificationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.WithContext(ctx).Warnf("notification cache: decode failed error=%v", err)
		return nil, false
	}
	return &resp, true
}

// Set stores the snapshot with the configured TTL.
func (c *NotificationCache) Set(ctx context.Context, resp *dto.NotificationsResponse) {
	if c == nil || c.cli == nil || resp == nil {
		return
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.cli.Set(ctx, snapshotKey, body, c.ttl).Err(); err != nil {
		logger.WithContext(ctx).Warnf("notification cache: set failed error=%v", err)
	}
}

// Invalidate drops the cached snapshot.
func (c *NotificationCache) Invalidate(ctx context.Context) {
	if c == nil || c.cli == nil {
		return
	}
	if err := c.cli.Del(ctx, snapshotKey).Err(); err != nil {
		logger.WithContext(ctx).Warnf("notification cache: invalidate failed error=%v", err)
	}
}
