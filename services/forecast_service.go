package services

import (
	"context"
	"sort"
	"time"

	"github.com/jupabego97/reportes-react-sub000/models"
)

// ForecastService projects sales with a 7-day moving average.
type ForecastService struct {
	sales *SalesService
}

var forecastService *ForecastService

func GetForecastService() *ForecastService {
	if forecastService == nil {
		forecastService = &ForecastService{sales: GetSalesService()}
	}
	return forecastService
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// weekday orders Monday first, the way the chart shows the week.
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Forecast builds the projection. The moving-average warm-up uses the
// partial window, the trend is the week-over-week slope of the average,
// and the confidence band is a flat ±20%. With fewer than 7 days of
// history only the daily series comes back.
func (s *ForecastService) Forecast(ctx context.Context, f models.FilterSet) (models.Forecast, error) {
	sales, err := s.sales.FetchSales(ctx, f)
	if err != nil {
		return models.Forecast{}, err
	}

	empty := models.Forecast{
		Historico:          []models.DailyPoint{},
		Predicciones:       []models.DailyPoint{},
		PrediccionesUpper:  []float64{},
		PrediccionesLower:  []float64{},
		VentasPorDiaSemana: []models.WeekdayAverage{},
	}
	if len(sales) == 0 {
		return empty, nil
	}

	porDia := map[string]float64{}
	fechaDe := map[string]models.Date{}
	for _, v := range sales {
		key := v.FechaVenta.String()
		porDia[key] += v.TotalVenta
		fechaDe[key] = v.FechaVenta
	}

	keys := make([]string, 0, len(porDia))
	for k := range porDia {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	valores := make([]float64, len(keys))
	for i, k := range keys {
		valores[i] = porDia[k]
	}

	if len(valores) < 7 {
		var suma float64
		for i, k := range keys {
			suma += valores[i]
			empty.Historico = append(empty.Historico, models.DailyPoint{
				Fecha:  fechaDe[k],
				Ventas: round2(valores[i]),
			})
		}
		empty.VentaDiariaPromedio = round2(suma / float64(len(valores)))
		return empty, nil
	}

	mediaMovil := movingAverage7(valores)

	ultimaMedia := mediaMovil[len(mediaMovil)-1]
	tendencia := (mediaMovil[len(mediaMovil)-1] - mediaMovil[len(mediaMovil)-7]) / 7

	historico := make([]models.DailyPoint, len(keys))
	for i, k := range keys {
		ma := round2(mediaMovil[i])
		historico[i] = models.DailyPoint{
			Fecha:        fechaDe[k],
			Ventas:       round2(valores[i]),
			MediaMovil7D: &ma,
		}
	}

	ultimaFecha := fechaDe[keys[len(keys)-1]].Time
	predicciones := make([]models.DailyPoint, 0, 7)
	upper := make([]float64, 0, 7)
	lower := make([]float64, 0, 7)
	for i := 1; i <= 7; i++ {
		valor := ultimaMedia + tendencia*float64(i)
		predicciones = append(predicciones, models.DailyPoint{
			Fecha:  models.Date{Time: ultimaFecha.AddDate(0, 0, i)},
			Ventas: round2(valor),
		})
		upper = append(upper, round2(valor*1.2))
		lower = append(lower, round2(valor*0.8))
	}

	return models.Forecast{
		VentaDiariaPromedio: round2(ultimaMedia),
		TendenciaDiaria:     round2(tendencia),
		PrediccionSemanal:   round2(ultimaMedia*7 + tendencia*28),
		PrediccionMensual:   round2(ultimaMedia*30 + tendencia*465),
		Historico:           historico,
		Predicciones:        predicciones,
		PrediccionesUpper:   upper,
		PrediccionesLower:   lower,
		VentasPorDiaSemana:  weekdayAverages(sales),
	}, nil
}

func movingAverage7(valores []float64) []float64 {
	media := make([]float64, len(valores))
	for i := range valores {
		start := i - 6
		if start < 0 {
			start = 0
		}
		var suma float64
		for j := start; j <= i; j++ {
			suma += valores[j]
		}
		media[i] = suma / float64(i-start+1)
	}
	return media
}

func weekdayAverages(sales []models.Sale) []models.WeekdayAverage {
	sumas := map[time.Weekday]float64{}
	conteos := map[time.Weekday]int{}
	for _, v := range sales {
		dia := v.FechaVenta.Weekday()
		sumas[dia] += v.TotalVenta
		conteos[dia]++
	}

	promedios := make([]models.WeekdayAverage, 0, 7)
	for _, dia := range weekdayOrder {
		promedio := 0.0
		if conteos[dia] > 0 {
			promedio = round2(sumas[dia] / float64(conteos[dia]))
		}
		promedios = append(promedios, models.WeekdayAverage{
			Dia:      weekdayNames[dia],
			Promedio: promedio,
		})
	}
	return promedios
}
