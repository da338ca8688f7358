package cache

import (
	"sync"
	"time"

	"github.com/jupabego97/reportes-react-sub000/models"
)

const optionsTTL = time.Hour

// ── Filter options cache ─────────────────────────────────────────────────────
// Process-local fast path for the filter widgets. The distinct-value
// lists change only when new sales land, so an hour of staleness is
// acceptable even without Redis.

type optionsEntry struct {
	options   models.FilterOptions
	fetchedAt time.Time
}

var (
	optionsMu    sync.RWMutex
	optionsCache *optionsEntry
)

func GetOptions() (models.FilterOptions, bool) {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	if optionsCache != nil && time.Since(optionsCache.fetchedAt) < optionsTTL {
		return optionsCache.options, true
	}
	return models.FilterOptions{}, false
}

func SetOptions(options models.FilterOptions) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	optionsCache = &optionsEntry{options: options, fetchedAt: time.Now()}
}

// ── Invalidate (call when the underlying report view is refreshed) ───────────

func InvalidateOptions() {
	optionsMu.Lock()
	optionsCache = nil
	optionsMu.Unlock()
}
