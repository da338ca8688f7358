package models

// Stock coverage thresholds in days.
const (
	DiasStockMinimo   = 7
	DiasStockObjetivo = 30
	DiasStockMaximo   = 60
)

// Stock state labels as the dashboard renders them.
const (
	EstadoCritico = "🔴 Crítico"
	EstadoBajo    = "🟠 Bajo"
	EstadoNormal  = "🟢 Normal"
	EstadoExceso  = "🔵 Exceso"
)

type InventoryItem struct {
	Nombre          string   `json:"nombre"`
	Familia         *string  `json:"familia"`
	Proveedor       *string  `json:"proveedor"`
	StockActual     int      `json:"stock_actual"`
	CantidadVendida int      `json:"cantidad_vendida_30d"`
	TotalVentas     float64  `json:"total_ventas_30d"`
	PrecioVenta     float64  `json:"precio_venta"`
	PrecioCompra    *float64 `json:"precio_compra"`
	VentaDiaria     float64  `json:"venta_diaria"`
	DiasCobertura   float64  `json:"dias_cobertura"`
	Rotacion        *float64 `json:"rotacion_anual"`
	StockMinimo     int      `json:"stock_minimo"`
	StockMaximo     int      `json:"stock_maximo"`
	EstadoStock     string   `json:"estado_stock"`
	ValorInventario float64  `json:"valor_inventario"`
}

type InventorySummary struct {
	TotalProductos int     `json:"total_productos"`
	ValorTotal     float64 `json:"valor_total"`
	Criticos       int     `json:"criticos"`
	Bajos          int     `json:"bajos"`
	Normales       int     `json:"normales"`
	Exceso         int     `json:"exceso"`
	ValorCriticos  float64 `json:"valor_criticos"`
	ValorExceso    float64 `json:"valor_exceso"`
}

type FamilyInventoryValue struct {
	Familia  string  `json:"familia"`
	Valor    float64 `json:"valor"`
	Criticos int     `json:"criticos"`
	Bajos    int     `json:"bajos"`
}

type ProviderInventoryValue struct {
	Proveedor string  `json:"proveedor"`
	Valor     float64 `json:"valor"`
	Productos int     `json:"productos"`
}

type InventoryProductDetail struct {
	InventoryItem
	ClasificacionABC *string      `json:"clasificacion_abc"`
	VentasDiarias    []DailySales `json:"ventas_diarias"`
}
