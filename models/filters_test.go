package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestFilterSetParams(t *testing.T) {
	t.Run("empty set projects to empty map", func(t *testing.T) {
		params := DefaultFilterSet().Params()
		assert.Empty(t, params)
	})

	t.Run("only set fields appear", func(t *testing.T) {
		f := FilterSet{
			FechaInicio: strPtr("2024-01-01"),
			Vendedores:  []string{"Juan"},
		}
		params := f.Params()

		require.Len(t, params, 2)
		assert.Equal(t, "2024-01-01", params["fecha_inicio"])
		assert.Equal(t, []string{"Juan"}, params["vendedores"])
		assert.NotContains(t, params, "fecha_fin")
		assert.NotContains(t, params, "productos")
	})

	t.Run("empty slices are omitted", func(t *testing.T) {
		f := FilterSet{Productos: []string{}, Familias: []string{}}
		assert.Empty(t, f.Params())
	})

	t.Run("numeric bounds pass through", func(t *testing.T) {
		f := FilterSet{
			PrecioMin:   floatPtr(10.5),
			PrecioMax:   floatPtr(99.9),
			CantidadMin: intPtr(1),
			CantidadMax: intPtr(50),
		}
		params := f.Params()

		require.Len(t, params, 4)
		assert.Equal(t, 10.5, params["precio_min"])
		assert.Equal(t, 99.9, params["precio_max"])
		assert.Equal(t, 1, params["cantidad_min"])
		assert.Equal(t, 50, params["cantidad_max"])
	})

	t.Run("projection is idempotent", func(t *testing.T) {
		f := FilterSet{
			FechaInicio: strPtr("2024-01-01"),
			FechaFin:    strPtr("2024-01-31"),
			Familias:    []string{"Bebidas", "Snacks"},
			PrecioMin:   floatPtr(5),
		}
		assert.Equal(t, f.Params(), f.Params())
	})

	t.Run("zero values set explicitly are not omitted", func(t *testing.T) {
		f := FilterSet{PrecioMin: floatPtr(0), CantidadMin: intPtr(0)}
		params := f.Params()

		require.Len(t, params, 2)
		assert.Equal(t, 0.0, params["precio_min"])
		assert.Equal(t, 0, params["cantidad_min"])
	})
}

func TestFilterSetIsEmpty(t *testing.T) {
	assert.True(t, DefaultFilterSet().IsEmpty())
	assert.True(t, FilterSet{Productos: []string{}}.IsEmpty())
	assert.False(t, FilterSet{Vendedores: []string{"Ana"}}.IsEmpty())
	assert.False(t, FilterSet{FechaInicio: strPtr("2024-06-01")}.IsEmpty())
}
