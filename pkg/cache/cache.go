// Package cache stores rendered artifacts for the preview server.
//
// Entries live only as long as the process. [MemoryCache] bounds the number
// of entries and expires them after a TTL; [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by [ArtifactKey].
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
