package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Run("equal params collide", func(t *testing.T) {
		a := Key("dashboard.metrics", map[string]any{"fecha_inicio": "2024-01-01", "vendedores": []string{"Juan"}})
		b := Key("dashboard.metrics", map[string]any{"vendedores": []string{"Juan"}, "fecha_inicio": "2024-01-01"})
		assert.Equal(t, a, b)
	})

	t.Run("different params never collide", func(t *testing.T) {
		a := Key("dashboard.metrics", map[string]any{"fecha_inicio": "2024-01-01"})
		b := Key("dashboard.metrics", map[string]any{"fecha_inicio": "2024-01-02"})
		assert.NotEqual(t, a, b)
	})

	t.Run("different views never collide", func(t *testing.T) {
		params := map[string]any{"fecha_inicio": "2024-01-01"}
		assert.NotEqual(t, Key("dashboard.metrics", params), Key("dashboard.alerts", params))
	})

	t.Run("key is prefixed by the view", func(t *testing.T) {
		key := Key("forecast", nil)
		assert.Contains(t, key, "forecast:")
	})
}

func TestTTLFor(t *testing.T) {
	q := NewQueryCache(NewMemoryStore())

	assert.Less(t, q.TTLFor("dashboard.metrics"), q.TTLFor("forecast"))
	assert.Equal(t, defaultTTL, q.TTLFor("sellers.ranking"))
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes and hit does not", func(t *testing.T) {
		q := NewQueryCache(NewMemoryStore())
		var calls int32

		fn := func(context.Context) (int, error) {
			atomic.AddInt32(&calls, 1)
			return 42, nil
		}

		got, err := Fetch(ctx, q, "dashboard.metrics", nil, fn)
		require.NoError(t, err)
		assert.Equal(t, 42, got)

		got, err = Fetch(ctx, q, "dashboard.metrics", nil, fn)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("different params compute independently", func(t *testing.T) {
		q := NewQueryCache(NewMemoryStore())
		var calls int32

		fn := func(context.Context) (string, error) {
			atomic.AddInt32(&calls, 1)
			return "ok", nil
		}

		_, err := Fetch(ctx, q, "sellers.ranking", map[string]any{"vendedores": []string{"Juan"}}, fn)
		require.NoError(t, err)
		_, err = Fetch(ctx, q, "sellers.ranking", map[string]any{"vendedores": []string{"Ana"}}, fn)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("concurrent identical requests collapse into one computation", func(t *testing.T) {
		q := NewQueryCache(NewMemoryStore())
		var calls int32
		gate := make(chan struct{})

		fn := func(context.Context) (int, error) {
			atomic.AddInt32(&calls, 1)
			<-gate
			return 7, nil
		}

		const workers = 8
		var wg sync.WaitGroup
		var started sync.WaitGroup
		results := make([]int, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			started.Add(1)
			go func(i int) {
				defer wg.Done()
				started.Done()
				got, err := Fetch(ctx, q, "purchasing.sugerencias", nil, fn)
				assert.NoError(t, err)
				results[i] = got
			}(i)
		}

		started.Wait()
		close(gate)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, got := range results {
			assert.Equal(t, 7, got)
		}
	})

	t.Run("failed computation gets one retry", func(t *testing.T) {
		q := NewQueryCache(NewMemoryStore())
		var calls int32

		fn := func(context.Context) (int, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return 0, errors.New("transient")
			}
			return 9, nil
		}

		got, err := Fetch(ctx, q, "forecast", nil, fn)
		require.NoError(t, err)
		assert.Equal(t, 9, got)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("persistent failure surfaces after the retry", func(t *testing.T) {
		q := NewQueryCache(NewMemoryStore())
		var calls int32

		fn := func(context.Context) (int, error) {
			atomic.AddInt32(&calls, 1)
			return 0, errors.New("down")
		}

		_, err := Fetch(ctx, q, "forecast", nil, fn)
		require.Error(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

		// nothing cached, a later call computes again
		_, err = Fetch(ctx, q, "forecast", nil, fn)
		require.Error(t, err)
		assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	})

	t.Run("a failing view does not poison another", func(t *testing.T) {
		q := NewQueryCache(NewMemoryStore())

		_, err := Fetch(ctx, q, "dashboard.alerts", nil, func(context.Context) (int, error) {
			return 0, errors.New("down")
		})
		require.Error(t, err)

		got, err := Fetch(ctx, q, "dashboard.metrics", nil, func(context.Context) (int, error) {
			return 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	q := NewQueryCache(NewMemoryStore())
	var calls int32

	fn := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 1, nil
	}

	paramsA := map[string]any{"fecha_inicio": "2024-01-01"}
	paramsB := map[string]any{"fecha_inicio": "2024-02-01"}

	_, err := Fetch(ctx, q, "purchasing.sugerencias", paramsA, fn)
	require.NoError(t, err)
	_, err = Fetch(ctx, q, "purchasing.sugerencias", paramsB, fn)
	require.NoError(t, err)
	_, err = Fetch(ctx, q, "purchasing.resumen", nil, fn)
	require.NoError(t, err)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))

	// drops every param combination of the view, and only that view
	require.NoError(t, q.Invalidate(ctx, "purchasing.sugerencias"))

	_, err = Fetch(ctx, q, "purchasing.sugerencias", paramsA, fn)
	require.NoError(t, err)
	_, err = Fetch(ctx, q, "purchasing.sugerencias", paramsB, fn)
	require.NoError(t, err)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))

	_, err = Fetch(ctx, q, "purchasing.resumen", nil, fn)
	require.NoError(t, err)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}
