package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/models"
)

func TestFilterStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user gets the defaults", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		set, err := fs.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		want := models.FilterSet{
			FechaInicio: strPtr("2024-01-01"),
			Vendedores:  []string{"Juan"},
		}
		require.NoError(t, fs.Set(ctx, "user-1", want))

		got, err := fs.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("per-field setters only touch their dimension", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		_, err := fs.SetVendedores(ctx, "user-1", []string{"Juan"})
		require.NoError(t, err)
		set, err := fs.SetFamilias(ctx, "user-1", []string{"Bebidas"})
		require.NoError(t, err)

		assert.Equal(t, []string{"Juan"}, set.Vendedores)
		assert.Equal(t, []string{"Bebidas"}, set.Familias)
	})

	t.Run("setting a field to nil clears it", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		_, err := fs.SetPriceRange(ctx, "user-1", floatPtr(10), floatPtr(50))
		require.NoError(t, err)
		set, err := fs.SetPriceRange(ctx, "user-1", nil, nil)
		require.NoError(t, err)

		assert.Nil(t, set.PrecioMin)
		assert.Nil(t, set.PrecioMax)
	})

	t.Run("last write wins", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		_, err := fs.SetVendedores(ctx, "user-1", []string{"Juan"})
		require.NoError(t, err)
		_, err = fs.SetVendedores(ctx, "user-1", []string{"Ana"})
		require.NoError(t, err)

		set, err := fs.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Ana"}, set.Vendedores)
	})

	t.Run("reset clears every dimension", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		_, err := fs.SetDateRange(ctx, "user-1", strPtr("2024-01-01"), strPtr("2024-01-31"))
		require.NoError(t, err)
		_, err = fs.SetQuantityRange(ctx, "user-1", intPtr(1), intPtr(10))
		require.NoError(t, err)

		set, err := fs.Reset(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())

		set, err = fs.Get(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("users do not share filter sets", func(t *testing.T) {
		fs := NewFilterStore(cache.NewMemoryStore())

		_, err := fs.SetVendedores(ctx, "user-1", []string{"Juan"})
		require.NoError(t, err)

		set, err := fs.Get(ctx, "user-2")
		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})
}
