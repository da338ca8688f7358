package models

// ABC classification criteria accepted by the analysis endpoints.
const (
	ABCCriterioVentas     = "ventas"
	ABCCriterioCantidad   = "cantidad"
	ABCCriterioMargen     = "margen"
	ABCCriterioFrecuencia = "frecuencia"
)

type ABCProduct struct {
	Nombre              string   `json:"nombre"`
	Categoria           string   `json:"categoria"`
	TotalVenta          float64  `json:"total_venta"`
	Cantidad            int      `json:"cantidad"`
	Transacciones       int      `json:"transacciones"`
	Margen              *float64 `json:"margen"`
	MargenPorcentaje    *float64 `json:"margen_porcentaje"`
	Familia             *string  `json:"familia"`
	Proveedor           *string  `json:"proveedor"`
	Porcentaje          float64  `json:"porcentaje"`
	PorcentajeAcumulado float64  `json:"porcentaje_acumulado"`
}

type ABCClassSummary struct {
	Categoria           string   `json:"categoria"`
	Productos           int      `json:"productos"`
	TotalVentas         float64  `json:"total_ventas"`
	TotalCantidad       int      `json:"total_cantidad"`
	TotalMargen         *float64 `json:"total_margen"`
	MargenPromedio      *float64 `json:"margen_promedio"`
	PorcentajeProductos float64  `json:"porcentaje_productos"`
	PorcentajeVentas    float64  `json:"porcentaje_ventas"`
	PorcentajeMargen    *float64 `json:"porcentaje_margen"`
}

type ABCInsight struct {
	Tipo        string  `json:"tipo"`
	Icono       string  `json:"icono"`
	Titulo      string  `json:"titulo"`
	Descripcion string  `json:"descripcion"`
	Accion      *string `json:"accion"`
	Categoria   *string `json:"categoria"`
}

type ABCTotals struct {
	Productos int      `json:"productos"`
	Ventas    float64  `json:"ventas"`
	Margen    *float64 `json:"margen"`
}

type ABCAnalysis struct {
	Productos     []ABCProduct      `json:"productos"`
	Resumen       []ABCClassSummary `json:"resumen"`
	Insights      []ABCInsight      `json:"insights"`
	CriterioUsado string            `json:"criterio_usado"`
	Totales       ABCTotals         `json:"totales"`
}

// ABCCategoryChange describes a product whose class moved between the
// current window and the 30-days-earlier one.
type ABCCategoryChange struct {
	Nombre            string  `json:"nombre"`
	CategoriaAnterior string  `json:"categoria_anterior"`
	CategoriaActual   string  `json:"categoria_actual"`
	Mejora            bool    `json:"mejora"`
	Icono             string  `json:"icono"`
	TotalVenta        float64 `json:"total_venta"`
}
