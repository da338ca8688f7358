package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupabego97/reportes-react-sub000/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestBuildFilterQuery(t *testing.T) {
	t.Run("empty set matches everything", func(t *testing.T) {
		where, args := BuildFilterQuery(models.FilterSet{})
		assert.Equal(t, "1=1", where)
		assert.Empty(t, args)
	})

	t.Run("every dimension adds a clause and an arg", func(t *testing.T) {
		f := models.FilterSet{
			FechaInicio: strPtr("2024-01-01"),
			FechaFin:    strPtr("2024-01-31"),
			Productos:   []string{"Cafe"},
			Vendedores:  []string{"Juan", "Ana"},
			Familias:    []string{"Bebidas"},
			Metodos:     []string{"Efectivo"},
			Proveedores: []string{"ACME"},
			PrecioMin:   floatPtr(1),
			PrecioMax:   floatPtr(100),
			CantidadMin: intPtr(1),
			CantidadMax: intPtr(10),
		}
		where, args := BuildFilterQuery(f)

		assert.Contains(t, where, "fecha_venta >= ?")
		assert.Contains(t, where, "fecha_venta <= ?")
		assert.Contains(t, where, "nombre IN ?")
		assert.Contains(t, where, "vendedor IN ?")
		assert.Contains(t, where, "familia IN ?")
		assert.Contains(t, where, "metodo IN ?")
		assert.Contains(t, where, "proveedor_moda IN ?")
		assert.Contains(t, where, "precio >= ?")
		assert.Contains(t, where, "cantidad <= ?")
		assert.Len(t, args, 11)
	})

	t.Run("args line up with the clauses in order", func(t *testing.T) {
		f := models.FilterSet{
			FechaInicio: strPtr("2024-06-01"),
			Vendedores:  []string{"Juan"},
			PrecioMax:   floatPtr(50),
		}
		where, args := BuildFilterQuery(f)

		assert.Equal(t, "1=1 AND fecha_venta >= ? AND vendedor IN ? AND precio <= ?", where)
		require.Len(t, args, 3)
		assert.Equal(t, "2024-06-01", args[0])
		assert.Equal(t, []string{"Juan"}, args[1])
		assert.Equal(t, 50.0, args[2])
	})
}

func TestFormatDelta(t *testing.T) {
	t.Run("no previous period yields no delta", func(t *testing.T) {
		assert.Nil(t, formatDelta(100, 0))
		assert.Nil(t, formatDelta(100, -5))
	})

	t.Run("growth is signed positive", func(t *testing.T) {
		delta := formatDelta(150, 100)
		require.NotNil(t, delta)
		assert.Equal(t, "+50.0%", *delta)
	})

	t.Run("decline is signed negative", func(t *testing.T) {
		delta := formatDelta(80, 100)
		require.NotNil(t, delta)
		assert.Equal(t, "-20.0%", *delta)
	})

	t.Run("flat period is +0.0%", func(t *testing.T) {
		delta := formatDelta(100, 100)
		require.NotNil(t, delta)
		assert.Equal(t, "+0.0%", *delta)
	})
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 12.35, round2(12.345))
	assert.Equal(t, 12.34, round2(12.344))
	assert.Equal(t, 12.3, round1(12.34))
	assert.Equal(t, 12.4, round1(12.35))
	assert.Equal(t, 0.0, round2(0))
}
