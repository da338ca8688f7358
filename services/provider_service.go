package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

// ProviderService aggregates sales and stock health per provider.
type ProviderService struct {
	db    *gorm.DB
	sales *SalesService
}

var providerService *ProviderService

func GetProviderService() *ProviderService {
	if providerService == nil {
		providerService = &ProviderService{db: config.DB, sales: GetSalesService()}
	}
	return providerService
}

// List returns the distinct provider names, sorted.
func (s *ProviderService) List(ctx context.Context) ([]string, error) {
	var proveedores []string
	err := s.db.WithContext(ctx).Raw(
		"SELECT DISTINCT proveedor_moda FROM reportes_ventas_30dias WHERE proveedor_moda IS NOT NULL ORDER BY proveedor_moda",
	).Scan(&proveedores).Error
	if err != nil {
		return nil, err
	}
	if proveedores == nil {
		proveedores = []string{}
	}
	return proveedores, nil
}

// Summaries aggregates sales per provider and annotates each with the
// count of critical and low stock products from the live inventory.
func (s *ProviderService) Summaries(ctx context.Context, f models.FilterSet) ([]models.ProviderSummary, error) {
	where, args := BuildFilterQuery(f)
	query := `
		SELECT
			proveedor_moda AS proveedor,
			COUNT(*) AS total_transacciones,
			COUNT(DISTINCT nombre) AS productos_unicos,
			SUM(cantidad) AS unidades_vendidas,
			SUM(precio * cantidad) AS total_ventas,
			AVG(precio) AS precio_promedio,
			AVG(precio_promedio_compra) AS costo_promedio,
			SUM(CASE WHEN precio_promedio_compra IS NOT NULL
				THEN (precio - precio_promedio_compra) * cantidad ELSE 0 END) AS margen_total,
			AVG(CASE WHEN precio_promedio_compra IS NOT NULL AND precio > 0
				THEN (precio - precio_promedio_compra) / precio * 100 END) AS margen_porcentaje_promedio
		FROM reportes_ventas_30dias
		WHERE ` + where + ` AND proveedor_moda IS NOT NULL
		GROUP BY proveedor_moda
		ORDER BY total_ventas DESC
	`
	var resumen []models.ProviderSummary
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&resumen).Error; err != nil {
		return nil, err
	}
	if resumen == nil {
		resumen = []models.ProviderSummary{}
	}

	for i := range resumen {
		resumen[i].TotalVentas = round2(resumen[i].TotalVentas)
		resumen[i].PrecioPromedio = round2(resumen[i].PrecioPromedio)
		resumen[i].MargenTotal = round2(resumen[i].MargenTotal)
	}

	// stock alert counts are decoration, a failed stock read leaves them at zero
	stock, err := s.stockByProvider(ctx)
	if err == nil {
		for i := range resumen {
			for _, item := range stock[resumen[i].Proveedor] {
				switch item.Estado {
				case models.EstadoCritico:
					resumen[i].ProductosCriticos++
				case models.EstadoBajo:
					resumen[i].ProductosBajos++
				}
			}
			resumen[i].TieneAlertas = resumen[i].ProductosCriticos > 0 || resumen[i].ProductosBajos > 0
		}
	}
	return resumen, nil
}

// stockByProvider joins 30-day sales velocity with the live inventory.
func (s *ProviderService) stockByProvider(ctx context.Context) (map[string][]models.ProviderStockItem, error) {
	var rows []struct {
		Proveedor       string   `gorm:"column:proveedor"`
		Nombre          string   `gorm:"column:nombre"`
		Familia         *string  `gorm:"column:familia"`
		StockActual     float64  `gorm:"column:stock_actual"`
		PrecioVenta     float64  `gorm:"column:precio_venta"`
		PrecioCompra    *float64 `gorm:"column:precio_compra"`
		CantidadVendida int      `gorm:"column:cantidad_vendida"`
	}
	query := `
		SELECT
			v.proveedor_moda AS proveedor,
			v.nombre,
			v.familia,
			COALESCE(i.cantidad_disponible, 0) AS stock_actual,
			COALESCE(i.precio, MAX(v.precio)) AS precio_venta,
			AVG(v.precio_promedio_compra) AS precio_compra,
			SUM(v.cantidad) AS cantidad_vendida
		FROM reportes_ventas_30dias v
		LEFT JOIN items i ON i.nombre = v.nombre
		WHERE v.proveedor_moda IS NOT NULL
		GROUP BY v.proveedor_moda, v.nombre, v.familia, i.cantidad_disponible, i.precio
	`
	if err := s.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	porProveedor := map[string][]models.ProviderStockItem{}
	for _, r := range rows {
		ventaDiaria := float64(r.CantidadVendida) / 30

		item := models.ProviderStockItem{
			Nombre:          r.Nombre,
			Familia:         r.Familia,
			StockActual:     int(r.StockActual),
			PrecioVenta:     r.PrecioVenta,
			PrecioCompra:    r.PrecioCompra,
			CantidadVendida: r.CantidadVendida,
			VentaDiaria:     round2(ventaDiaria),
		}

		if ventaDiaria > 0 {
			cobertura := round1(r.StockActual / ventaDiaria)
			item.DiasCobertura = &cobertura
			switch {
			case cobertura <= models.DiasStockMinimo/2.0:
				item.Estado = models.EstadoCritico
			case cobertura <= models.DiasStockMinimo:
				item.Estado = models.EstadoBajo
			case cobertura <= models.DiasStockMaximo:
				item.Estado = models.EstadoNormal
			default:
				item.Estado = models.EstadoExceso
			}
			if cobertura < models.DiasStockObjetivo {
				sugerida := int(ventaDiaria*models.DiasStockObjetivo) - int(r.StockActual)
				if sugerida < 0 {
					sugerida = 0
				}
				item.CantidadSugerida = sugerida
			}
		} else {
			item.Estado = models.EstadoExceso
		}

		precioCosto := r.PrecioVenta
		if r.PrecioCompra != nil && *r.PrecioCompra > 0 {
			precioCosto = *r.PrecioCompra
		}
		item.ValorInventario = round2(r.StockActual * precioCosto)

		porProveedor[r.Proveedor] = append(porProveedor[r.Proveedor], item)
	}
	return porProveedor, nil
}

var estadoOrder = map[string]int{
	models.EstadoCritico: 0,
	models.EstadoBajo:    1,
	models.EstadoNormal:  2,
	models.EstadoExceso:  3,
}

// Stock lists one provider's products ordered worst-first.
func (s *ProviderService) Stock(ctx context.Context, proveedor string) ([]models.ProviderStockItem, error) {
	porProveedor, err := s.stockByProvider(ctx)
	if err != nil {
		return nil, err
	}
	items := porProveedor[proveedor]
	if items == nil {
		items = []models.ProviderStockItem{}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ei, ej := estadoOrder[items[i].Estado], estadoOrder[items[j].Estado]
		if ei != ej {
			return ei < ej
		}
		return items[i].VentaDiaria > items[j].VentaDiaria
	})
	return items, nil
}

// Detail combines the summary row with the top products and the daily
// series for one provider.
func (s *ProviderService) Detail(ctx context.Context, proveedor string, f models.FilterSet) (models.ProviderDetail, error) {
	scoped := f
	scoped.Proveedores = []string{proveedor}

	sales, err := s.sales.FetchSales(ctx, scoped)
	if err != nil {
		return models.ProviderDetail{}, err
	}

	resumenes, err := s.Summaries(ctx, scoped)
	if err != nil {
		return models.ProviderDetail{}, err
	}
	detail := models.ProviderDetail{Proveedor: proveedor}
	for _, r := range resumenes {
		if r.Proveedor == proveedor {
			detail.Resumen = r
			break
		}
	}

	porProducto := map[string]*models.TopProduct{}
	porDia := map[string]*models.DailySales{}
	for _, v := range sales {
		p, ok := porProducto[v.Nombre]
		if !ok {
			p = &models.TopProduct{Nombre: v.Nombre}
			porProducto[v.Nombre] = p
		}
		p.Cantidad += v.Cantidad
		p.TotalVenta += v.TotalVenta

		key := v.FechaVenta.String()
		d, ok := porDia[key]
		if !ok {
			d = &models.DailySales{Fecha: v.FechaVenta}
			porDia[key] = d
		}
		d.Ventas += v.TotalVenta
	}

	top := make([]models.TopProduct, 0, len(porProducto))
	for _, p := range porProducto {
		p.TotalVenta = round2(p.TotalVenta)
		top = append(top, *p)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].TotalVenta > top[j].TotalVenta })
	if len(top) > 10 {
		top = top[:10]
	}
	detail.TopProductos = top

	dias := make([]string, 0, len(porDia))
	for d := range porDia {
		dias = append(dias, d)
	}
	sort.Strings(dias)
	serie := make([]models.DailySales, 0, len(dias))
	for _, d := range dias {
		punto := porDia[d]
		punto.Ventas = round2(punto.Ventas)
		serie = append(serie, *punto)
	}
	detail.VentasSemanales = serie

	return detail, nil
}

// Scores rates each provider 0-100, equal thirds for sales volume,
// margin percentage and units moved, each normalized against the best
// provider in the window.
func (s *ProviderService) Scores(ctx context.Context, f models.FilterSet) ([]models.ProviderScore, error) {
	resumenes, err := s.Summaries(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(resumenes) == 0 {
		return []models.ProviderScore{}, nil
	}

	var maxVentas, maxMargenPct, maxUnidades float64
	for _, r := range resumenes {
		if r.TotalVentas > maxVentas {
			maxVentas = r.TotalVentas
		}
		if r.MargenPorcentajePromedio != nil && *r.MargenPorcentajePromedio > maxMargenPct {
			maxMargenPct = *r.MargenPorcentajePromedio
		}
		if float64(r.UnidadesVendidas) > maxUnidades {
			maxUnidades = float64(r.UnidadesVendidas)
		}
	}

	normalize := func(v, max float64) float64 {
		if max <= 0 {
			return 0
		}
		return v / max * 100
	}

	scores := make([]models.ProviderScore, 0, len(resumenes))
	for _, r := range resumenes {
		margenPct := 0.0
		if r.MargenPorcentajePromedio != nil {
			margenPct = *r.MargenPorcentajePromedio
		}
		sv := normalize(r.TotalVentas, maxVentas)
		sm := normalize(margenPct, maxMargenPct)
		sr := normalize(float64(r.UnidadesVendidas), maxUnidades)
		scores = append(scores, models.ProviderScore{
			Proveedor:     r.Proveedor,
			Score:         round1((sv + sm + sr) / 3),
			ScoreVentas:   round1(sv),
			ScoreMargen:   round1(sm),
			ScoreRotacion: round1(sr),
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores, nil
}

// PriceGaps flags products bought from several providers where the
// costs differ by more than 10%.
func (s *ProviderService) PriceGaps(ctx context.Context, f models.FilterSet) ([]models.ProviderPriceGap, error) {
	sales, err := s.sales.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	type costAcc struct {
		suma  float64
		count int
	}
	porProducto := map[string]map[string]*costAcc{}
	for _, v := range sales {
		if v.ProveedorModa == nil || v.PrecioPromedioCompra == nil || *v.PrecioPromedioCompra <= 0 {
			continue
		}
		provs, ok := porProducto[v.Nombre]
		if !ok {
			provs = map[string]*costAcc{}
			porProducto[v.Nombre] = provs
		}
		acc, ok := provs[*v.ProveedorModa]
		if !ok {
			acc = &costAcc{}
			provs[*v.ProveedorModa] = acc
		}
		acc.suma += *v.PrecioPromedioCompra
		acc.count++
	}

	gaps := []models.ProviderPriceGap{}
	for nombre, provs := range porProducto {
		if len(provs) < 2 {
			continue
		}
		precios := make([]models.ProviderPrice, 0, len(provs))
		min, max := 0.0, 0.0
		for proveedor, acc := range provs {
			precio := round2(acc.suma / float64(acc.count))
			precios = append(precios, models.ProviderPrice{Proveedor: proveedor, PrecioCompra: precio})
			if min == 0 || precio < min {
				min = precio
			}
			if precio > max {
				max = precio
			}
		}
		if min <= 0 {
			continue
		}
		diferencia := (max - min) / min * 100
		if diferencia < 10 {
			continue
		}
		sort.Slice(precios, func(i, j int) bool { return precios[i].PrecioCompra < precios[j].PrecioCompra })
		gaps = append(gaps, models.ProviderPriceGap{
			Nombre:        nombre,
			Proveedores:   precios,
			PrecioMinimo:  min,
			PrecioMaximo:  max,
			DiferenciaPct: round1(diferencia),
		})
	}

	sort.Slice(gaps, func(i, j int) bool { return gaps[i].DiferenciaPct > gaps[j].DiferenciaPct })
	return gaps, nil
}
