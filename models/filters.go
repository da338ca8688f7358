package models

// FilterSet is the dashboard-wide filter criteria set. Every field is
// independently optional; a nil pointer or empty slice means "no
// constraint on this dimension".
type FilterSet struct {
	FechaInicio *string  `json:"fecha_inicio,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	FechaFin    *string  `json:"fecha_fin,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-01-31"`
	Productos   []string `json:"productos,omitempty"`
	Vendedores  []string `json:"vendedores,omitempty"`
	Familias    []string `json:"familias,omitempty"`
	Metodos     []string `json:"metodos,omitempty"`
	Proveedores []string `json:"proveedores,omitempty"`
	PrecioMin   *float64 `json:"precio_min,omitempty"`
	PrecioMax   *float64 `json:"precio_max,omitempty"`
	CantidadMin *int     `json:"cantidad_min,omitempty"`
	CantidadMax *int     `json:"cantidad_max,omitempty"`
}

// DefaultFilterSet returns the documented defaults: no constraints at all.
func DefaultFilterSet() FilterSet {
	return FilterSet{}
}

// Params projects the filter set into the query parameters the API layer
// and cache keys use. Nil and empty fields are omitted entirely; set
// fields pass through unchanged. Calling it twice on the same set yields
// the same map, so projecting an already-projected set is a no-op.
func (f FilterSet) Params() map[string]any {
	params := make(map[string]any)

	if f.FechaInicio != nil {
		params["fecha_inicio"] = *f.FechaInicio
	}
	if f.FechaFin != nil {
		params["fecha_fin"] = *f.FechaFin
	}
	if len(f.Productos) > 0 {
		params["productos"] = f.Productos
	}
	if len(f.Vendedores) > 0 {
		params["vendedores"] = f.Vendedores
	}
	if len(f.Familias) > 0 {
		params["familias"] = f.Familias
	}
	if len(f.Metodos) > 0 {
		params["metodos"] = f.Metodos
	}
	if len(f.Proveedores) > 0 {
		params["proveedores"] = f.Proveedores
	}
	if f.PrecioMin != nil {
		params["precio_min"] = *f.PrecioMin
	}
	if f.PrecioMax != nil {
		params["precio_max"] = *f.PrecioMax
	}
	if f.CantidadMin != nil {
		params["cantidad_min"] = *f.CantidadMin
	}
	if f.CantidadMax != nil {
		params["cantidad_max"] = *f.CantidadMax
	}

	return params
}

// IsEmpty reports whether no dimension is constrained.
func (f FilterSet) IsEmpty() bool {
	return len(f.Params()) == 0
}
