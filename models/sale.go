package models

// Sale is one row of the 30-day sales report view, plus the derived
// money fields the dashboard shows. Margin fields stay nil when the
// purchase cost is unknown.
type Sale struct {
	Nombre               string   `json:"nombre" gorm:"column:nombre"`
	Precio               float64  `json:"precio" gorm:"column:precio"`
	Cantidad             int      `json:"cantidad" gorm:"column:cantidad"`
	Metodo               *string  `json:"metodo" gorm:"column:metodo"`
	Vendedor             *string  `json:"vendedor" gorm:"column:vendedor"`
	FechaVenta           Date     `json:"fecha_venta" gorm:"column:fecha_venta"`
	Familia              *string  `json:"familia" gorm:"column:familia"`
	ProveedorModa        *string  `json:"proveedor_moda" gorm:"column:proveedor_moda"`
	PrecioPromedioCompra *float64 `json:"precio_promedio_compra" gorm:"column:precio_promedio_compra"`

	TotalVenta       float64  `json:"total_venta" gorm:"-"`
	Margen           *float64 `json:"margen" gorm:"-"`
	MargenPorcentaje *float64 `json:"margen_porcentaje" gorm:"-"`
	TotalMargen      *float64 `json:"total_margen" gorm:"-"`
}

// Enrich fills the derived fields from the base columns.
func (s *Sale) Enrich() {
	s.TotalVenta = s.Precio * float64(s.Cantidad)

	if s.PrecioPromedioCompra == nil || s.Precio == 0 {
		s.Margen = nil
		s.MargenPorcentaje = nil
		s.TotalMargen = nil
		return
	}

	margen := s.Precio - *s.PrecioPromedioCompra
	pct := (margen / s.Precio) * 100
	total := margen * float64(s.Cantidad)
	s.Margen = &margen
	s.MargenPorcentaje = &pct
	s.TotalMargen = &total
}

// EnrichSales fills derived fields on every row in place and returns
// the slice for chaining.
func EnrichSales(sales []Sale) []Sale {
	for i := range sales {
		sales[i].Enrich()
	}
	return sales
}
