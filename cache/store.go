package cache

import (
	"context"
	"time"
)

// Store is the byte-level backend behind the query cache and the
// filter store. Redis in production, memory in tests. A ttl of zero
// means the entry never expires.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
