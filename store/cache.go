package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	gocachestore "github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/sirupsen/logrus"
)

// CachedKV keeps recently read documents in a ristretto cache in front of a
// slower backend. Writes reach the backend before the cache.
type CachedKV struct {
	backend KV
	cache   *cache.Cache[[]byte]
	// wait blocks until buffered ristretto writes are applied.
	wait func()
}

func NewCachedKV(backend KV) (*CachedKV, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 26, // 64MB
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)
	return &CachedKV{
		backend: backend,
		cache:   cache.New[[]byte](ristrettoStore),
		wait:    ristrettoCache.Wait,
	}, nil
}

func (c *CachedKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if value, err := c.cache.Get(ctx, key); err == nil {
		return append([]byte(nil), value...), true, nil
	}
	value, found, err := c.backend.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}
	c.remember(ctx, key, value)
	return value, true, nil
}

func (c *CachedKV) Set(ctx context.Context, key string, value []byte) error {
	if err := c.backend.Set(ctx, key, value); err != nil {
		_ = c.cache.Delete(ctx, key)
		return err
	}
	c.remember(ctx, key, value)
	return nil
}

func (c *CachedKV) Delete(ctx context.Context, key string) error {
	_ = c.cache.Delete(ctx, key)
	return c.backend.Delete(ctx, key)
}

func (c *CachedKV) remember(ctx context.Context, key string, value []byte) {
	copied := append([]byte(nil), value...)
	if err := c.cache.Set(ctx, key, copied, gocachestore.WithCost(int64(len(copied)))); err != nil {
		logrus.WithError(err).WithField("key", key).Debug("cache set failed")
	}
	c.wait()
}
