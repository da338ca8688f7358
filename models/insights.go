package models

// Insight is one automatically generated observation. Each insight is
// computed independently; a failed query drops the insight, never the
// whole endpoint.
type Insight struct {
	Tipo    string           `json:"tipo"` // info, warning, success
	Icono   string           `json:"icono"`
	Titulo  string           `json:"titulo"`
	Detalle string           `json:"detalle"`
	Datos   []map[string]any `json:"datos,omitempty"`
}

// ExecutiveKPIs are the top-of-dashboard numbers for the current day
// and month.
type ExecutiveKPIs struct {
	VentasHoy        float64 `json:"ventas_hoy"`
	VentasAyer       float64 `json:"ventas_ayer"`
	DeltaDia         *string `json:"delta_dia,omitempty"`
	VentasMes        float64 `json:"ventas_mes"`
	UnidadesMes      int     `json:"unidades_mes"`
	MargenMes        float64 `json:"margen_mes"`
	TicketPromedio   float64 `json:"ticket_promedio"`
	ProductosActivos int     `json:"productos_activos"`
}
