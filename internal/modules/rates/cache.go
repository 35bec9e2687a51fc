// README: Redis read-through cache for the region surcharge table.
package rates

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const regionCacheKey = "rates:regions"

// RegionCache keeps a JSON copy of the region surcharge table in Redis so a
// fleet of API instances does not hammer the configuration store on every
// snapshot rebuild. A miss is a normal outcome, not an error.
type RegionCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRegionCache(rdb *redis.Client, ttl time.Duration) *RegionCache {
	return &RegionCache{redis: rdb, ttl: ttl}
}

func (c *RegionCache) Get(ctx context.Context) (map[string]RegionSurcharge, bool, error) {
	val, err := c.redis.Get(ctx, regionCacheKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var regions map[string]RegionSurcharge
	if err := json.Unmarshal([]byte(val), &regions); err != nil {
		// A corrupt payload is treated as a miss; the loader will overwrite it.
		return nil, false, nil
	}
	return regions, true, nil
}

func (c *RegionCache) Set(ctx context.Context, regions map[string]RegionSurcharge) error {
	payload, err := json.Marshal(regions)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, regionCacheKey, payload, c.ttl).Err()
}

// Invalidate drops the cached table, forcing the next reload to hit the
// configuration store.
func (c *RegionCache) Invalidate(ctx context.Context) error {
	return c.redis.Del(ctx, regionCacheKey).Err()
}
