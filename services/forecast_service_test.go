package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupabego97/reportes-react-sub000/models"
)

func TestMovingAverage7(t *testing.T) {
	t.Run("warm-up averages only the available days", func(t *testing.T) {
		media := movingAverage7([]float64{10, 20, 30})

		require.Len(t, media, 3)
		assert.Equal(t, 10.0, media[0])
		assert.Equal(t, 15.0, media[1])
		assert.Equal(t, 20.0, media[2])
	})

	t.Run("full window covers the trailing seven days", func(t *testing.T) {
		valores := []float64{1, 2, 3, 4, 5, 6, 7, 8}
		media := movingAverage7(valores)

		// (1+...+7)/7 and (2+...+8)/7
		assert.Equal(t, 4.0, media[6])
		assert.Equal(t, 5.0, media[7])
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, movingAverage7(nil))
	})
}

func TestWeekdayAverages(t *testing.T) {
	saleOn := func(fecha string, total float64) models.Sale {
		t2, _ := time.Parse("2006-01-02", fecha)
		return models.Sale{
			Nombre:     "Cafe",
			Precio:     total,
			Cantidad:   1,
			FechaVenta: models.NewDate(t2),
			TotalVenta: total,
		}
	}

	// 2024-01-01 is a Monday, 2024-01-08 the next one
	sales := []models.Sale{
		saleOn("2024-01-01", 100),
		saleOn("2024-01-08", 200),
		saleOn("2024-01-02", 50),
	}

	promedios := weekdayAverages(sales)

	require.Len(t, promedios, 7)
	assert.Equal(t, "Lunes", promedios[0].Dia)
	assert.Equal(t, 150.0, promedios[0].Promedio)
	assert.Equal(t, "Martes", promedios[1].Dia)
	assert.Equal(t, 50.0, promedios[1].Promedio)
	assert.Equal(t, "Domingo", promedios[6].Dia)
	assert.Equal(t, 0.0, promedios[6].Promedio)
}
