package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/middleware"
	"github.com/vyxmsh/AI-Based-Analytical-Dashboard/internal/model"
)

// BundleCacheTTL bounds how stale a fetched channel bundle may get before the
// metadata API is consulted again.
const BundleCacheTTL = 15 * time.Minute

// ChannelBundle is the cached unit for a fetched channel: the channel itself
// plus its recent videos.
type ChannelBundle struct {
	Channel *model.ChannelMetrics `json:"channel"`
	Videos  []model.Video         `json:"videos"`
}

// CacheService provides a Redis cache-aside layer for channel bundles.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		middleware.Logger.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	middleware.Logger.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetBundle retrieves a cached channel bundle. Returns nil if not cached or
// cache is disabled.
func (c *CacheService) GetBundle(ctx context.Context, channelID string) (*ChannelBundle, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, bundleKey(channelID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bundle ChannelBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// SetBundle stores a channel bundle in cache.
func (c *CacheService) SetBundle(ctx context.Context, channelID string, bundle *ChannelBundle) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, bundleKey(channelID), b, BundleCacheTTL).Err()
}

// InvalidateBundle removes a channel bundle from cache.
func (c *CacheService) InvalidateBundle(ctx context.Context, channelID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, bundleKey(channelID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func bundleKey(channelID string) string {
	return "bundle:" + channelID
}
