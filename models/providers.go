package models

type ProviderSummary struct {
	Proveedor                string   `json:"proveedor"`
	TotalTransacciones       int      `json:"total_transacciones"`
	ProductosUnicos          int      `json:"productos_unicos"`
	UnidadesVendidas         int      `json:"unidades_vendidas"`
	TotalVentas              float64  `json:"total_ventas"`
	PrecioPromedio           float64  `json:"precio_promedio"`
	CostoPromedio            *float64 `json:"costo_promedio"`
	MargenTotal              float64  `json:"margen_total"`
	MargenPorcentajePromedio *float64 `json:"margen_porcentaje_promedio"`

	ProductosCriticos int  `json:"productos_criticos"`
	ProductosBajos    int  `json:"productos_bajos"`
	TieneAlertas      bool `json:"tiene_alertas"`
}

type ProviderRankingEntry struct {
	Proveedor string  `json:"proveedor"`
	Valor     float64 `json:"valor"`
	Posicion  int     `json:"posicion"`
}

type ProviderStockItem struct {
	Nombre           string   `json:"nombre"`
	Familia          *string  `json:"familia"`
	StockActual      int      `json:"stock_actual"`
	PrecioVenta      float64  `json:"precio_venta"`
	PrecioCompra     *float64 `json:"precio_compra"`
	CantidadVendida  int      `json:"cantidad_vendida_30d"`
	VentaDiaria      float64  `json:"venta_diaria"`
	DiasCobertura    *float64 `json:"dias_cobertura"`
	Estado           string   `json:"estado"`
	CantidadSugerida int      `json:"cantidad_sugerida"`
	ValorInventario  float64  `json:"valor_inventario"`
}

type ProviderDetail struct {
	Proveedor       string          `json:"proveedor"`
	Resumen         ProviderSummary `json:"resumen"`
	TopProductos    []TopProduct    `json:"top_productos"`
	VentasSemanales []DailySales    `json:"ventas_semanales"`
}

// ProviderScore is a 0-100 composite of sales volume, margin and
// product rotation, for comparing providers at a glance.
type ProviderScore struct {
	Proveedor     string  `json:"proveedor"`
	Score         float64 `json:"score"`
	ScoreVentas   float64 `json:"score_ventas"`
	ScoreMargen   float64 `json:"score_margen"`
	ScoreRotacion float64 `json:"score_rotacion"`
}

// ProviderPriceGap flags a product sourced from several providers with
// meaningfully different purchase costs.
type ProviderPriceGap struct {
	Nombre        string          `json:"nombre"`
	Proveedores   []ProviderPrice `json:"proveedores"`
	PrecioMinimo  float64         `json:"precio_minimo"`
	PrecioMaximo  float64         `json:"precio_maximo"`
	DiferenciaPct float64         `json:"diferencia_pct"`
}

type ProviderPrice struct {
	Proveedor    string  `json:"proveedor"`
	PrecioCompra float64 `json:"precio_compra"`
}
