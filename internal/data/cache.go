package data

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const catalogKeyPrefix = "storefront:catalog:"

func catalogKey(name string) string {
	return catalogKeyPrefix + name
}

// cachedStrings serves a reference list from Redis, falling back to load on a
// miss. Cache failures are logged and never fail the call.
func (d *Data) cachedStrings(ctx context.Context, name string, load func(context.Context) ([]string, error)) ([]string, error) {
	key := catalogKey(name)

	if d.rdb != nil {
		cached, err := d.rdb.Get(ctx, key).Result()
		switch {
		case err == nil:
			var list []string
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				d.log.Debugf("cache hit for %s", key)
				return list, nil
			}
			d.log.Warnf("dropping malformed cache entry %s", key)
		case !errors.Is(err, redis.Nil):
			d.log.Warnf("failed to read cache %s: %v", key, err)
		}
	}

	list, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if d.rdb != nil {
		if b, err := json.Marshal(list); err == nil {
			if err := d.rdb.Set(ctx, key, b, d.cacheTTL).Err(); err != nil {
				d.log.Warnf("failed to write cache %s: %v", key, err)
			}
		}
	}

	return list, nil
}
