package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupabego97/reportes-react-sub000/models"
)

func TestShiftWindowBack(t *testing.T) {
	t.Run("shifts both bounds and drops everything else", func(t *testing.T) {
		f := models.FilterSet{
			FechaInicio: strPtr("2024-02-01"),
			FechaFin:    strPtr("2024-02-29"),
			Vendedores:  []string{"Juan"},
			PrecioMin:   floatPtr(10),
		}

		shifted := shiftWindowBack(f, 30)

		require.NotNil(t, shifted.FechaInicio)
		require.NotNil(t, shifted.FechaFin)
		assert.Equal(t, "2024-01-02", *shifted.FechaInicio)
		assert.Equal(t, "2024-01-30", *shifted.FechaFin)
		assert.Nil(t, shifted.Vendedores)
		assert.Nil(t, shifted.PrecioMin)
	})

	t.Run("missing bounds stay missing", func(t *testing.T) {
		shifted := shiftWindowBack(models.FilterSet{}, 30)
		assert.Nil(t, shifted.FechaInicio)
		assert.Nil(t, shifted.FechaFin)
	})

	t.Run("unparseable dates are dropped", func(t *testing.T) {
		f := models.FilterSet{FechaInicio: strPtr("not-a-date")}
		shifted := shiftWindowBack(f, 30)
		assert.Nil(t, shifted.FechaInicio)
	})
}

func TestCriterionValue(t *testing.T) {
	acc := &abcAccum{totalVenta: 100, cantidad: 40, costoTotal: 75, transacciones: 12}

	assert.Equal(t, 100.0, criterionValue(models.ABCCriterioVentas, acc))
	assert.Equal(t, 40.0, criterionValue(models.ABCCriterioCantidad, acc))
	assert.Equal(t, 25.0, criterionValue(models.ABCCriterioMargen, acc))
	assert.Equal(t, 12.0, criterionValue(models.ABCCriterioFrecuencia, acc))
}

func TestClassSummary(t *testing.T) {
	margenA := 30.0
	pctA := 37.5
	rows := []models.ABCProduct{
		{Nombre: "Cafe", Categoria: "A", TotalVenta: 80, Cantidad: 8, Margen: &margenA, MargenPorcentaje: &pctA},
		{Nombre: "Te", Categoria: "B", TotalVenta: 15, Cantidad: 3},
		{Nombre: "Mate", Categoria: "C", TotalVenta: 5, Cantidad: 1},
	}

	a := classSummary("A", rows, 100, 30)
	assert.Equal(t, 1, a.Productos)
	assert.Equal(t, 80.0, a.TotalVentas)
	assert.Equal(t, 80.0, a.PorcentajeVentas)
	assert.Equal(t, 33.3, a.PorcentajeProductos)
	require.NotNil(t, a.TotalMargen)
	assert.Equal(t, 30.0, *a.TotalMargen)
	require.NotNil(t, a.PorcentajeMargen)
	assert.Equal(t, 100.0, *a.PorcentajeMargen)

	c := classSummary("C", rows, 100, 30)
	assert.Equal(t, 1, c.Productos)
	assert.Equal(t, 5.0, c.PorcentajeVentas)
	assert.Nil(t, c.TotalMargen)
}

func TestABCAccumMargen(t *testing.T) {
	t.Run("known cost yields a margin", func(t *testing.T) {
		acc := &abcAccum{totalVenta: 100, costoTotal: 60}
		m := acc.margen()
		require.NotNil(t, m)
		assert.Equal(t, 40.0, *m)
	})

	t.Run("no cost means no margin", func(t *testing.T) {
		acc := &abcAccum{totalVenta: 100}
		assert.Nil(t, acc.margen())
	})
}
