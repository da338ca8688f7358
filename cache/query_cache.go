package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

// Per-view staleness windows. Metrics and alerts move fast, forecasts
// and purchase suggestions are expensive and stable, filter options
// barely change.
var viewTTLs = map[string]time.Duration{
	"dashboard.metrics":      time.Minute,
	"dashboard.alerts":       time.Minute,
	"forecast":               15 * time.Minute,
	"purchasing.sugerencias": 15 * time.Minute,
	"purchasing.resumen":     15 * time.Minute,
	"purchasing.agotados":    15 * time.Minute,
	"purchasing.reorden":     15 * time.Minute,
	"filters.opciones":       time.Hour,
}

const defaultTTL = 5 * time.Minute

// QueryCache caches view results keyed by (view, normalized filter
// params). Keys for different param sets are disjoint, so a slow
// response for an old filter can never land in the slot of the current
// one.
type QueryCache struct {
	store Store
	group singleflight.Group
}

func NewQueryCache(store Store) *QueryCache {
	return &QueryCache{store: store}
}

// Queries is the shared instance wired up at startup.
var Queries *QueryCache

func InitQueryCache(store Store) {
	Queries = NewQueryCache(store)
}

// Key builds the cache key: view name plus a sha256 of the params
// serialized with sorted keys, so equal param sets always collide and
// different ones never do.
func Key(view string, params map[string]any) string {
	payload, err := json.Marshal(params)
	if err != nil {
		payload = []byte(fmt.Sprintf("%v", params))
	}
	sum := sha256.Sum256(payload)
	return view + ":" + hex.EncodeToString(sum[:])
}

func (q *QueryCache) TTLFor(view string) time.Duration {
	if ttl, ok := viewTTLs[view]; ok {
		return ttl
	}
	return defaultTTL
}

// Invalidate drops every cached entry of a view, across all filter
// combinations. Called after purchase-order generation so suggestion
// lists refetch.
func (q *QueryCache) Invalidate(ctx context.Context, view string) error {
	return q.store.DeletePrefix(ctx, view+":")
}

func (q *QueryCache) InvalidateAll(ctx context.Context) error {
	for view := range viewTTLs {
		if err := q.store.DeletePrefix(ctx, view+":"); err != nil {
			return err
		}
	}
	return nil
}

// Fetch returns the cached value for (view, params) or computes it.
// Concurrent identical requests are collapsed into one computation;
// requests for different keys run independently. The computation gets
// one automatic retry before the error is surfaced.
func Fetch[T any](ctx context.Context, q *QueryCache, view string, params map[string]any, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	key := Key(view, params)

	if raw, ok, err := q.store.Get(ctx, key); err == nil && ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// stale encoding, drop and recompute
		_ = q.store.Delete(ctx, key)
	} else if err != nil {
		log.Printf("[cache] read failed for %s: %v", key, err)
	}

	result, err, _ := q.group.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			value, err = fn(ctx)
		}
		if err != nil {
			return nil, err
		}
		if raw, mErr := json.Marshal(value); mErr == nil {
			if sErr := q.store.Set(ctx, key, raw, q.TTLFor(view)); sErr != nil {
				log.Printf("[cache] write failed for %s: %v", key, sErr)
			}
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}
