package geocoding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:"

// CachedGeocoder memoizes successful resolutions of another geocoder in Redis.
// Misses are never cached, and a failing Redis only costs a call to the inner geocoder.
type CachedGeocoder struct {
	inner  ports.Geocoder
	redis  redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGeocoder(inner ports.Geocoder, client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		inner:  inner,
		redis:  client,
		ttl:    ttl,
		logger: logger.With("component", "geocode-cache"),
	}
}

type cachedResult struct {
	Lon              float64                 `json:"lon"`
	Lat              float64                 `json:"lat"`
	Components       ports.AddressComponents `json:"components"`
	FormattedAddress string                  `json:"formatted"`
}

func (c *CachedGeocoder) Resolve(ctx context.Context, address string) (ports.GeocodeResult, error) {
	key := CacheKey(address)

	if result, ok := c.lookup(ctx, key); ok {
		return result, nil
	}

	result, err := c.inner.Resolve(ctx, address)
	if err != nil {
		return ports.GeocodeResult{}, err
	}

	c.store(ctx, key, result)
	return result, nil
}

func (c *CachedGeocoder) lookup(ctx context.Context, key string) (ports.GeocodeResult, bool) {
	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return ports.GeocodeResult{}, false
	}

	var cached cachedResult
	if err = json.Unmarshal(raw, &cached); err != nil {
		c.logger.WarnContext(ctx, "dropping malformed cache entry", "key", key, "error", err)
		return ports.GeocodeResult{}, false
	}

	point, err := kernel.NewGeoPoint(cached.Lon, cached.Lat)
	if err != nil {
		return ports.GeocodeResult{}, false
	}

	return ports.GeocodeResult{
		Point:            point,
		Components:       cached.Components,
		FormattedAddress: cached.FormattedAddress,
	}, true
}

func (c *CachedGeocoder) store(ctx context.Context, key string, result ports.GeocodeResult) {
	raw, err := json.Marshal(cachedResult{
		Lon:              result.Point.Lon(),
		Lat:              result.Point.Lat(),
		Components:       result.Components,
		FormattedAddress: result.FormattedAddress,
	})
	if err != nil {
		return
	}

	if err = c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

// CacheKey derives the Redis key of an address. Case and runs of whitespace do not matter.
func CacheKey(address string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(address), " "))
	sum := sha256.Sum256([]byte(normalized))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
