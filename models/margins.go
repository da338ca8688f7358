package models

type MarginPoint struct {
	Nombre               string   `json:"nombre"`
	Precio               *float64 `json:"precio"`
	PrecioPromedioCompra *float64 `json:"precio_promedio_compra"`
	Cantidad             int      `json:"cantidad"`
	Margen               *float64 `json:"margen"`
	MargenPorcentaje     *float64 `json:"margen_porcentaje"`
	TotalMargen          *float64 `json:"total_margen"`
	Vendedor             *string  `json:"vendedor,omitempty"`
}

type ProductMargin struct {
	Nombre      string  `json:"nombre"`
	Margen      float64 `json:"margen"`
	TotalMargen float64 `json:"total_margen"`
	Cantidad    int     `json:"cantidad"`
}

type FamilyMargin struct {
	Familia          string  `json:"familia"`
	MargenTotal      float64 `json:"margen_total"`
	VentasTotales    float64 `json:"ventas_totales"`
	MargenPorcentaje float64 `json:"margen_porcentaje"`
}

// MarginAnalysis is the full margins view. SinDatosCosto marks the
// explicit empty shape returned when no row carries a purchase cost.
type MarginAnalysis struct {
	MargenPromedio       float64         `json:"margen_promedio"`
	MargenTotal          float64         `json:"margen_total"`
	VentasConMargenTotal float64         `json:"ventas_con_margen_total"`
	VentasRentables      int             `json:"ventas_rentables"`
	VentasNoRentables    int             `json:"ventas_no_rentables"`
	DatosScatter         []MarginPoint   `json:"datos_scatter"`
	TopMargen            []ProductMargin `json:"top_margen"`
	BottomMargen         []ProductMargin `json:"bottom_margen"`
	SinDatosCosto        bool            `json:"sin_datos_costo"`
	MargenesPorFamilia   []FamilyMargin  `json:"margenes_por_familia"`
}
