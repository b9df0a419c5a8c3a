package repository

import (
	"context"
	"time"
)

// CacheRepository defines the cache contract used for geocoding lookups.
type CacheRepository interface {
	// Get returns the cached value, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether a key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
