package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupabego97/reportes-react-sub000/models"
)

func saleFor(vendedor string, nombre string, precio float64, cantidad int) models.Sale {
	v := models.Sale{
		Nombre:   nombre,
		Precio:   precio,
		Cantidad: cantidad,
		Vendedor: &vendedor,
	}
	v.Enrich()
	return v
}

func TestAccumulateSellers(t *testing.T) {
	t.Run("totals per seller in first-seen order", func(t *testing.T) {
		sales := []models.Sale{
			saleFor("Juan", "Cafe", 10, 2),
			saleFor("Ana", "Te", 5, 1),
			saleFor("Juan", "Cafe", 10, 3),
		}

		acc, orden := accumulateSellers(sales)

		require.Equal(t, []string{"Juan", "Ana"}, orden)
		assert.Equal(t, 50.0, acc["Juan"].ventas)
		assert.Equal(t, 5, acc["Juan"].unidades)
		assert.Equal(t, 2, acc["Juan"].registros)
		assert.Equal(t, 1, len(acc["Juan"].productos))
		assert.Equal(t, 5.0, acc["Ana"].ventas)
	})

	t.Run("rows without a seller are skipped", func(t *testing.T) {
		empty := ""
		sales := []models.Sale{
			{Nombre: "Cafe", Precio: 10, Cantidad: 1},
			{Nombre: "Te", Precio: 5, Cantidad: 1, Vendedor: &empty},
			saleFor("Ana", "Te", 5, 1),
		}

		acc, orden := accumulateSellers(sales)

		assert.Len(t, acc, 1)
		assert.Equal(t, []string{"Ana"}, orden)
	})

	t.Run("distinct products are counted once each", func(t *testing.T) {
		sales := []models.Sale{
			saleFor("Juan", "Cafe", 10, 1),
			saleFor("Juan", "Te", 5, 1),
			saleFor("Juan", "Cafe", 10, 1),
		}

		acc, _ := accumulateSellers(sales)
		assert.Equal(t, 2, len(acc["Juan"].productos))
	})

	t.Run("margin only accumulates when the cost is known", func(t *testing.T) {
		costo := 6.0
		conMargen := saleFor("Juan", "Cafe", 10, 2)
		conMargen.PrecioPromedioCompra = &costo
		conMargen.Enrich()

		sales := []models.Sale{conMargen, saleFor("Juan", "Te", 5, 1)}
		acc, _ := accumulateSellers(sales)

		// (10 - 6) * 2, the costless row contributes nothing
		assert.Equal(t, 8.0, acc["Juan"].margen)
	})
}
