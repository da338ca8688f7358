package models

// Seller performance tiers relative to the team average.
const (
	RendimientoExcelente = "Excelente"
	RendimientoNormal    = "Normal"
	RendimientoBajo      = "Bajo"
)

type SellerRanking struct {
	Vendedor         string  `json:"vendedor"`
	VentasTotales    float64 `json:"ventas_totales"`
	MargenTotal      float64 `json:"margen_total"`
	ProductosUnicos  int     `json:"productos_unicos"`
	Unidades         int     `json:"unidades"`
	TicketPromedio   float64 `json:"ticket_promedio"`
	MargenPorcentaje float64 `json:"margen_porcentaje"`
	Rendimiento      string  `json:"rendimiento"`
}

type SellerDetail struct {
	Vendedor         string             `json:"vendedor"`
	VentasTotales    float64            `json:"ventas_totales"`
	ProductosUnicos  int                `json:"productos_unicos"`
	TicketPromedio   float64            `json:"ticket_promedio"`
	MargenPorcentaje float64            `json:"margen_porcentaje"`
	DeltaVsPromedio  float64            `json:"delta_vs_promedio"`
	VentasDiarias    []SellerDailySales `json:"ventas_diarias"`
	TopProductos     []TopProduct       `json:"top_productos"`
	MetodosPago      []MethodTotal      `json:"metodos_pago"`
}

type SellerDailySales struct {
	Fecha      string  `json:"fecha"`
	TotalVenta float64 `json:"total_venta"`
}
