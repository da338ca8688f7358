package models

// DashboardMetrics are the headline numbers, with deltas against the
// previous 30-day window formatted as signed percentages ("+12.3%").
type DashboardMetrics struct {
	TotalVentas    float64 `json:"total_ventas"`
	TotalRegistros int     `json:"total_registros"`
	PrecioPromedio float64 `json:"precio_promedio"`
	MargenPromedio float64 `json:"margen_promedio"`
	MargenTotal    float64 `json:"margen_total"`

	DeltaVentas    *string `json:"delta_ventas,omitempty"`
	DeltaRegistros *string `json:"delta_registros,omitempty"`
	DeltaPrecio    *string `json:"delta_precio,omitempty"`
}

type Alert struct {
	Tipo    string           `json:"tipo"` // error, warning, info
	Icono   string           `json:"icono"`
	Titulo  string           `json:"titulo"`
	Detalle string           `json:"detalle"`
	Datos   []map[string]any `json:"datos,omitempty"`
}

type TopProduct struct {
	Nombre     string  `json:"nombre"`
	Cantidad   int     `json:"cantidad"`
	TotalVenta float64 `json:"total_venta"`
}

type TopSeller struct {
	Vendedor   string  `json:"vendedor"`
	TotalVenta float64 `json:"total_venta"`
	Cantidad   int     `json:"cantidad"`
}

type DailySales struct {
	Fecha  Date    `json:"fecha"`
	Ventas float64 `json:"ventas"`
}

type DayTotal struct {
	Fecha      string  `json:"fecha"`
	TotalVenta float64 `json:"total_venta"`
	Cantidad   int     `json:"cantidad"`
}

type SellerTotal struct {
	Vendedor   string  `json:"vendedor"`
	TotalVenta float64 `json:"total_venta"`
}

type FamilyTotal struct {
	Familia    string  `json:"familia"`
	TotalVenta float64 `json:"total_venta"`
}

type MethodTotal struct {
	Metodo     string  `json:"metodo"`
	TotalVenta float64 `json:"total_venta"`
}

type QuantityTotal struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// FilterOptions lists every selectable value plus the numeric and date
// bounds of the data, for populating the dashboard filter widgets.
type FilterOptions struct {
	Productos   []string `json:"productos"`
	Vendedores  []string `json:"vendedores"`
	Familias    []string `json:"familias"`
	Metodos     []string `json:"metodos"`
	Proveedores []string `json:"proveedores"`
	PrecioMin   float64  `json:"precio_min"`
	PrecioMax   float64  `json:"precio_max"`
	CantidadMin int      `json:"cantidad_min"`
	CantidadMax int      `json:"cantidad_max"`
	FechaMin    Date     `json:"fecha_min"`
	FechaMax    Date     `json:"fecha_max"`
}
