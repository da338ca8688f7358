package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/jupabego97/reportes-react-sub000/models"
)

// SellerService ranks sellers and builds the per-seller drill-down.
type SellerService struct {
	sales *SalesService
}

var sellerService *SellerService

func GetSellerService() *SellerService {
	if sellerService == nil {
		sellerService = &SellerService{sales: GetSalesService()}
	}
	return sellerService
}

type sellerAccum struct {
	ventas    float64
	margen    float64
	unidades  int
	registros int
	precioSum float64
	productos map[string]bool
}

func accumulateSellers(sales []models.Sale) (map[string]*sellerAccum, []string) {
	acc := map[string]*sellerAccum{}
	var orden []string
	for _, v := range sales {
		if v.Vendedor == nil || *v.Vendedor == "" {
			continue
		}
		entry, ok := acc[*v.Vendedor]
		if !ok {
			entry = &sellerAccum{productos: map[string]bool{}}
			acc[*v.Vendedor] = entry
			orden = append(orden, *v.Vendedor)
		}
		entry.ventas += v.TotalVenta
		if v.TotalMargen != nil {
			entry.margen += *v.TotalMargen
		}
		entry.unidades += v.Cantidad
		entry.registros++
		entry.precioSum += v.Precio
		entry.productos[v.Nombre] = true
	}
	return acc, orden
}

// Ranking lists every seller with totals and a performance tier
// relative to the team average: above 120% is Excelente, above 80% is
// Normal, the rest is Bajo.
func (s *SellerService) Ranking(ctx context.Context, f models.FilterSet) ([]models.SellerRanking, error) {
	sales, err := s.sales.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	acc, orden := accumulateSellers(sales)
	if len(acc) == 0 {
		return []models.SellerRanking{}, nil
	}

	var totalVentas float64
	for _, entry := range acc {
		totalVentas += entry.ventas
	}
	promedio := totalVentas / float64(len(acc))

	ranking := make([]models.SellerRanking, 0, len(orden))
	for _, vendedor := range orden {
		entry := acc[vendedor]

		rendimiento := models.RendimientoBajo
		if entry.ventas > promedio*1.2 {
			rendimiento = models.RendimientoExcelente
		} else if entry.ventas > promedio*0.8 {
			rendimiento = models.RendimientoNormal
		}

		margenPct := 0.0
		if entry.ventas > 0 {
			margenPct = entry.margen / entry.ventas * 100
		}

		ranking = append(ranking, models.SellerRanking{
			Vendedor:         vendedor,
			VentasTotales:    round2(entry.ventas),
			MargenTotal:      round2(entry.margen),
			ProductosUnicos:  len(entry.productos),
			Unidades:         entry.unidades,
			TicketPromedio:   round2(entry.precioSum / float64(entry.registros)),
			MargenPorcentaje: round1(margenPct),
			Rendimiento:      rendimiento,
		})
	}

	sort.Slice(ranking, func(i, j int) bool { return ranking[i].VentasTotales > ranking[j].VentasTotales })
	return ranking, nil
}

// Detail builds the drill-down for one seller: daily series, top
// products, payment mix and the gap against the team average.
func (s *SellerService) Detail(ctx context.Context, vendedor string, f models.FilterSet) (models.SellerDetail, error) {
	sales, err := s.sales.FetchSales(ctx, f)
	if err != nil {
		return models.SellerDetail{}, err
	}

	acc, _ := accumulateSellers(sales)
	entry, ok := acc[vendedor]
	if !ok {
		return models.SellerDetail{}, fmt.Errorf("vendedor %q sin ventas en el periodo", vendedor)
	}

	var totalVentas float64
	for _, e := range acc {
		totalVentas += e.ventas
	}
	promedio := totalVentas / float64(len(acc))
	delta := 0.0
	if promedio > 0 {
		delta = (entry.ventas - promedio) / promedio * 100
	}

	porDia := map[string]float64{}
	porProducto := map[string]*struct {
		cantidad int
		total    float64
	}{}
	porMetodo := map[string]float64{}
	for _, v := range sales {
		if v.Vendedor == nil || *v.Vendedor != vendedor {
			continue
		}
		porDia[v.FechaVenta.String()] += v.TotalVenta

		p, ok := porProducto[v.Nombre]
		if !ok {
			p = &struct {
				cantidad int
				total    float64
			}{}
			porProducto[v.Nombre] = p
		}
		p.cantidad += v.Cantidad
		p.total += v.TotalVenta

		metodo := "Sin método"
		if v.Metodo != nil && *v.Metodo != "" {
			metodo = *v.Metodo
		}
		porMetodo[metodo] += v.TotalVenta
	}

	dias := make([]string, 0, len(porDia))
	for d := range porDia {
		dias = append(dias, d)
	}
	sort.Strings(dias)
	ventasDiarias := make([]models.SellerDailySales, 0, len(dias))
	for _, d := range dias {
		ventasDiarias = append(ventasDiarias, models.SellerDailySales{
			Fecha:      d,
			TotalVenta: round2(porDia[d]),
		})
	}

	topProductos := make([]models.TopProduct, 0, len(porProducto))
	for nombre, p := range porProducto {
		topProductos = append(topProductos, models.TopProduct{
			Nombre:     nombre,
			Cantidad:   p.cantidad,
			TotalVenta: round2(p.total),
		})
	}
	sort.Slice(topProductos, func(i, j int) bool { return topProductos[i].TotalVenta > topProductos[j].TotalVenta })
	if len(topProductos) > 10 {
		topProductos = topProductos[:10]
	}

	metodos := make([]models.MethodTotal, 0, len(porMetodo))
	for metodo, total := range porMetodo {
		metodos = append(metodos, models.MethodTotal{Metodo: metodo, TotalVenta: round2(total)})
	}
	sort.Slice(metodos, func(i, j int) bool { return metodos[i].TotalVenta > metodos[j].TotalVenta })

	margenPct := 0.0
	if entry.ventas > 0 {
		margenPct = entry.margen / entry.ventas * 100
	}

	return models.SellerDetail{
		Vendedor:         vendedor,
		VentasTotales:    round2(entry.ventas),
		ProductosUnicos:  len(entry.productos),
		TicketPromedio:   round2(entry.precioSum / float64(entry.registros)),
		MargenPorcentaje: round1(margenPct),
		DeltaVsPromedio:  round1(delta),
		VentasDiarias:    ventasDiarias,
		TopProductos:     topProductos,
		MetodosPago:      metodos,
	}, nil
}
