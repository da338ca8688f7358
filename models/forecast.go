package models

type DailyPoint struct {
	Fecha        Date     `json:"fecha"`
	Ventas       float64  `json:"ventas"`
	MediaMovil7D *float64 `json:"media_movil_7d,omitempty"`
}

type WeekdayAverage struct {
	Dia      string  `json:"dia"`
	Promedio float64 `json:"promedio"`
}

// Forecast is the sales projection view built from a 7-day moving
// average. With fewer than 7 days of history only Historico is filled.
type Forecast struct {
	VentaDiariaPromedio float64          `json:"venta_diaria_promedio"`
	TendenciaDiaria     float64          `json:"tendencia_diaria"`
	PrediccionSemanal   float64          `json:"prediccion_semanal"`
	PrediccionMensual   float64          `json:"prediccion_mensual"`
	Historico           []DailyPoint     `json:"historico"`
	Predicciones        []DailyPoint     `json:"predicciones"`
	PrediccionesUpper   []float64        `json:"predicciones_upper"`
	PrediccionesLower   []float64        `json:"predicciones_lower"`
	VentasPorDiaSemana  []WeekdayAverage `json:"ventas_por_dia_semana"`
}
