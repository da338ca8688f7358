package services

import (
	"context"
	"sort"

	"github.com/jupabego97/reportes-react-sub000/models"
)

// MarginService analyzes profitability over the filtered sales.
type MarginService struct {
	sales *SalesService
}

var marginService *MarginService

func GetMarginService() *MarginService {
	if marginService == nil {
		marginService = &MarginService{sales: GetSalesService()}
	}
	return marginService
}

const scatterLimit = 200

// Analyze builds the full margins view. When no row carries a purchase
// cost it returns the explicit empty shape with SinDatosCosto set, so
// the dashboard can say "no cost data" instead of showing zeros.
func (m *MarginService) Analyze(ctx context.Context, f models.FilterSet) (models.MarginAnalysis, error) {
	sales, err := m.sales.FetchSales(ctx, f)
	if err != nil {
		return models.MarginAnalysis{}, err
	}

	var conMargen []models.Sale
	for _, v := range sales {
		if v.PrecioPromedioCompra != nil {
			conMargen = append(conMargen, v)
		}
	}

	if len(conMargen) == 0 {
		return models.MarginAnalysis{
			DatosScatter:       []models.MarginPoint{},
			TopMargen:          []models.ProductMargin{},
			BottomMargen:       []models.ProductMargin{},
			MargenesPorFamilia: []models.FamilyMargin{},
			SinDatosCosto:      true,
		}, nil
	}

	var (
		margenes             []float64
		margenTotal          float64
		ventasConMargenTotal float64
		rentables            int
		noRentables          int
	)
	for _, v := range conMargen {
		ventasConMargenTotal += v.TotalVenta
		if v.Margen != nil {
			margenes = append(margenes, *v.Margen)
			if *v.Margen > 0 {
				rentables++
			} else {
				noRentables++
			}
		}
		if v.TotalMargen != nil {
			margenTotal += *v.TotalMargen
		}
	}
	margenPromedio := 0.0
	if len(margenes) > 0 {
		var suma float64
		for _, mg := range margenes {
			suma += mg
		}
		margenPromedio = suma / float64(len(margenes))
	}

	scatter := make([]models.MarginPoint, 0, scatterLimit)
	for _, v := range conMargen {
		if len(scatter) == scatterLimit {
			break
		}
		precio := v.Precio
		scatter = append(scatter, models.MarginPoint{
			Nombre:               v.Nombre,
			Precio:               &precio,
			PrecioPromedioCompra: v.PrecioPromedioCompra,
			Cantidad:             v.Cantidad,
			Margen:               v.Margen,
			MargenPorcentaje:     v.MargenPorcentaje,
			TotalMargen:          v.TotalMargen,
			Vendedor:             v.Vendedor,
		})
	}

	type productAcc struct {
		margenSum   float64
		totalMargen float64
		cantidad    int
		count       int
	}
	porProducto := map[string]*productAcc{}
	for _, v := range conMargen {
		acc, ok := porProducto[v.Nombre]
		if !ok {
			acc = &productAcc{}
			porProducto[v.Nombre] = acc
		}
		if v.Margen != nil {
			acc.margenSum += *v.Margen
		}
		if v.TotalMargen != nil {
			acc.totalMargen += *v.TotalMargen
		}
		acc.cantidad += v.Cantidad
		acc.count++
	}

	productos := make([]models.ProductMargin, 0, len(porProducto))
	for nombre, acc := range porProducto {
		productos = append(productos, models.ProductMargin{
			Nombre:      nombre,
			Margen:      round2(acc.margenSum / float64(acc.count)),
			TotalMargen: round2(acc.totalMargen),
			Cantidad:    acc.cantidad,
		})
	}

	top := make([]models.ProductMargin, len(productos))
	copy(top, productos)
	sort.Slice(top, func(i, j int) bool { return top[i].TotalMargen > top[j].TotalMargen })
	if len(top) > 10 {
		top = top[:10]
	}

	bottom := make([]models.ProductMargin, len(productos))
	copy(bottom, productos)
	sort.Slice(bottom, func(i, j int) bool { return bottom[i].TotalMargen < bottom[j].TotalMargen })
	if len(bottom) > 10 {
		bottom = bottom[:10]
	}

	return models.MarginAnalysis{
		MargenPromedio:       round2(margenPromedio),
		MargenTotal:          round2(margenTotal),
		VentasConMargenTotal: round2(ventasConMargenTotal),
		VentasRentables:      rentables,
		VentasNoRentables:    noRentables,
		DatosScatter:         scatter,
		TopMargen:            top,
		BottomMargen:         bottom,
		MargenesPorFamilia:   m.byFamily(conMargen),
	}, nil
}

func (m *MarginService) byFamily(sales []models.Sale) []models.FamilyMargin {
	type familyAcc struct {
		margen float64
		ventas float64
	}
	acc := map[string]*familyAcc{}
	for _, v := range sales {
		if v.Familia == nil {
			continue
		}
		entry, ok := acc[*v.Familia]
		if !ok {
			entry = &familyAcc{}
			acc[*v.Familia] = entry
		}
		if v.TotalMargen != nil {
			entry.margen += *v.TotalMargen
		}
		entry.ventas += v.TotalVenta
	}

	familias := make([]models.FamilyMargin, 0, len(acc))
	for familia, entry := range acc {
		pct := 0.0
		if entry.ventas > 0 {
			pct = entry.margen / entry.ventas * 100
		}
		familias = append(familias, models.FamilyMargin{
			Familia:          familia,
			MargenTotal:      round2(entry.margen),
			VentasTotales:    round2(entry.ventas),
			MargenPorcentaje: round2(pct),
		})
	}
	sort.Slice(familias, func(i, j int) bool { return familias[i].MargenTotal > familias[j].MargenTotal })
	return familias
}
