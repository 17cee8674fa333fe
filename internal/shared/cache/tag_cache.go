package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resource-group tags. Mutating anything in a group invalidates every
// cached query carrying that group's tag; there is no per-id invalidation.
const (
	TagLeaveApplications = "leave-applications"
	TagCompassionate     = "compassionate-leaves"
	TagEmployees         = "employees"
	TagDepartments       = "departments"
	TagHolidays          = "holidays"
	TagPolicies          = "leave-policies"
	TagBalances          = "leave-balances"
	TagNotifications     = "notifications"
	TagDashboard         = "dashboard"
)

const (
	keyPrefix = "ldq:"
	tagPrefix = "ldtag:"

	// Cached queries are advisory copies; a short TTL bounds staleness even
	// when an invalidation is missed.
	defaultTTL = 5 * time.Minute
)

// Key builds the cache key for an endpoint plus its arguments. The same
// endpoint called with the same arguments always maps to the same entry,
// which is what lets singleflight collapse duplicate in-flight fetches.
func Key(endpoint string, args ...string) string {
	if len(args) == 0 {
		return keyPrefix + endpoint
	}
	return keyPrefix + endpoint + "?" + strings.Join(args, "&")
}

// TagCache is a redis-backed query cache keyed by endpoint+args, with each
// entry joined to one or more resource-group tags. Reads either hit the
// cache or go through singleflight to the fetch function; mutations call
// Invalidate on the affected tags, dropping every member entry at once.
type TagCache struct {
	rdb    *redis.Client
	sf     *singleflight.Group
	ttl    time.Duration
	logger *zap.Logger
}

func New(rdb *redis.Client, logger ...*zap.Logger) *TagCache {
	l := zap.L().Named("cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache")
	}
	return &TagCache{
		rdb:    rdb,
		sf:     &singleflight.Group{},
		ttl:    defaultTTL,
		logger: l,
	}
}

// WithTTL overrides the default entry TTL.
func (c *TagCache) WithTTL(ttl time.Duration) *TagCache {
	c.ttl = ttl
	return c
}

// Get unmarshals the cached entry into dest. The bool reports a hit.
func (c *TagCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.rdb == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry behaves like a miss; the next Set replaces it.
		c.logger.Warn("cache entry unmarshal failed", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Set stores value under key and registers the key in each tag's member set.
func (c *TagCache) Set(ctx context.Context, key string, tags []string, value any) error {
	if c.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return err
	}
	for _, tag := range tags {
		tk := tagPrefix + tag
		if err := c.rdb.SAdd(ctx, tk, key).Err(); err != nil {
			return err
		}
		// The member set outlives its entries slightly so expired keys
		// still get cleaned out of the set on the next invalidation.
		c.rdb.Expire(ctx, tk, c.ttl*2)
	}
	return nil
}

// Invalidate drops every cached entry registered under the given tags.
func (c *TagCache) Invalidate(ctx context.Context, tags ...string) {
	if c.rdb == nil {
		return
	}
	for _, tag := range tags {
		tk := tagPrefix + tag
		keys, err := c.rdb.SMembers(ctx, tk).Result()
		if err != nil {
			c.logger.Warn("tag members lookup failed", zap.String("tag", tag), zap.Error(err))
			continue
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				c.logger.Warn("tag entries delete failed", zap.String("tag", tag), zap.Error(err))
			}
		}
		if err := c.rdb.Del(ctx, tk).Err(); err != nil {
			c.logger.Warn("tag set delete failed", zap.String("tag", tag), zap.Error(err))
		}
		c.logger.Debug("tag invalidated", zap.String("tag", tag), zap.Int("entries", len(keys)))
	}
}

// Through reads key from the cache, or collapses concurrent misses into a
// single fetch and fills the cache with its result. Fetch errors are never
// cached.
func Through[T any](c *TagCache, ctx context.Context, key string, tags []string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		fresh, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, tags, fresh); err != nil {
			c.logger.Warn("cache fill failed", zap.String("key", key), zap.Error(err))
		}
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
