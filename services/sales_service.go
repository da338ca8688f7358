package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

const salesTable = "reportes_ventas_30dias"

// SalesService answers every query over the 30-day sales report view.
type SalesService struct {
	db *gorm.DB
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

var salesService *SalesService

func GetSalesService() *SalesService {
	if salesService == nil {
		salesService = NewSalesService(config.DB)
	}
	return salesService
}

// BuildFilterQuery turns a filter set into a parameterized WHERE body.
// Multi-selects expand through GORM's IN handling, so values are never
// interpolated into the SQL text.
func BuildFilterQuery(f models.FilterSet) (string, []any) {
	var sb strings.Builder
	sb.WriteString("1=1")
	args := make([]any, 0, 8)

	if f.FechaInicio != nil {
		sb.WriteString(" AND fecha_venta >= ?")
		args = append(args, *f.FechaInicio)
	}
	if f.FechaFin != nil {
		sb.WriteString(" AND fecha_venta <= ?")
		args = append(args, *f.FechaFin)
	}
	if len(f.Productos) > 0 {
		sb.WriteString(" AND nombre IN ?")
		args = append(args, f.Productos)
	}
	if len(f.Vendedores) > 0 {
		sb.WriteString(" AND vendedor IN ?")
		args = append(args, f.Vendedores)
	}
	if len(f.Familias) > 0 {
		sb.WriteString(" AND familia IN ?")
		args = append(args, f.Familias)
	}
	if len(f.Metodos) > 0 {
		sb.WriteString(" AND metodo IN ?")
		args = append(args, f.Metodos)
	}
	if len(f.Proveedores) > 0 {
		sb.WriteString(" AND proveedor_moda IN ?")
		args = append(args, f.Proveedores)
	}
	if f.PrecioMin != nil {
		sb.WriteString(" AND precio >= ?")
		args = append(args, *f.PrecioMin)
	}
	if f.PrecioMax != nil {
		sb.WriteString(" AND precio <= ?")
		args = append(args, *f.PrecioMax)
	}
	if f.CantidadMin != nil {
		sb.WriteString(" AND cantidad >= ?")
		args = append(args, *f.CantidadMin)
	}
	if f.CantidadMax != nil {
		sb.WriteString(" AND cantidad <= ?")
		args = append(args, *f.CantidadMax)
	}

	return sb.String(), args
}

// FetchSales returns every matching row with derived fields filled.
func (s *SalesService) FetchSales(ctx context.Context, f models.FilterSet) ([]models.Sale, error) {
	where, args := BuildFilterQuery(f)
	var sales []models.Sale
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s ORDER BY fecha_venta DESC, nombre", salesTable, where)
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&sales).Error; err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}
	return models.EnrichSales(sales), nil
}

// FetchSalesPage returns one page plus the unpaginated total.
func (s *SalesService) FetchSalesPage(ctx context.Context, f models.FilterSet, page, pageSize int) ([]models.Sale, int, error) {
	where, args := BuildFilterQuery(f)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", salesTable, where)
	if err := s.db.WithContext(ctx).Raw(countQuery, args...).Scan(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	offset := (page - 1) * pageSize
	var sales []models.Sale
	pageQuery := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s ORDER BY fecha_venta DESC, nombre LIMIT ? OFFSET ?",
		salesTable, where,
	)
	pageArgs := append(append([]any{}, args...), pageSize, offset)
	if err := s.db.WithContext(ctx).Raw(pageQuery, pageArgs...).Scan(&sales).Error; err != nil {
		return nil, 0, fmt.Errorf("fetch sales page: %w", err)
	}

	return models.EnrichSales(sales), int(total), nil
}

type previousPeriod struct {
	Total     float64
	Registros int
	Precio    float64
}

// previousPeriodStats aggregates the 30-60 days back window from the
// raw invoice tables, for the metric deltas.
func (s *SalesService) previousPeriodStats(ctx context.Context) (previousPeriod, error) {
	fechaInicio := time.Now().AddDate(0, 0, -60).Format("2006-01-02")
	fechaFin := time.Now().AddDate(0, 0, -31).Format("2006-01-02")

	var row struct {
		Total     float64 `gorm:"column:total"`
		Registros int     `gorm:"column:registros"`
		Precio    float64 `gorm:"column:precio"`
	}
	query := `
		SELECT
			COALESCE(SUM(f.precio * f.cantidad), 0) AS total,
			COUNT(*) AS registros,
			COALESCE(AVG(f.precio), 0) AS precio
		FROM facturas f
		WHERE f.fecha BETWEEN ? AND ?
	`
	if err := s.db.WithContext(ctx).Raw(query, fechaInicio, fechaFin).Scan(&row).Error; err != nil {
		return previousPeriod{}, err
	}
	return previousPeriod{Total: row.Total, Registros: row.Registros, Precio: row.Precio}, nil
}

// formatDelta renders a signed percentage change ("+12.3%").
func formatDelta(current, previous float64) *string {
	if previous <= 0 {
		return nil
	}
	delta := ((current - previous) / previous) * 100
	s := fmt.Sprintf("%+.1f%%", delta)
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Metrics computes the headline numbers with previous-period deltas.
func (s *SalesService) Metrics(ctx context.Context, f models.FilterSet) (models.DashboardMetrics, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return models.DashboardMetrics{}, err
	}
	if len(sales) == 0 {
		return models.DashboardMetrics{}, nil
	}

	var totalVentas, sumaPrecios, margenTotal float64
	var margenes []float64
	for _, v := range sales {
		totalVentas += v.TotalVenta
		sumaPrecios += v.Precio
		if v.Margen != nil {
			margenes = append(margenes, *v.Margen)
		}
		if v.TotalMargen != nil {
			margenTotal += *v.TotalMargen
		}
	}

	precioPromedio := sumaPrecios / float64(len(sales))
	margenPromedio := 0.0
	if len(margenes) > 0 {
		var suma float64
		for _, m := range margenes {
			suma += m
		}
		margenPromedio = suma / float64(len(margenes))
	}

	metrics := models.DashboardMetrics{
		TotalVentas:    round2(totalVentas),
		TotalRegistros: len(sales),
		PrecioPromedio: round2(precioPromedio),
		MargenPromedio: round2(margenPromedio),
		MargenTotal:    round2(margenTotal),
	}

	prev, err := s.previousPeriodStats(ctx)
	if err != nil {
		// deltas are decorative, the metrics themselves still stand
		return metrics, nil
	}
	metrics.DeltaVentas = formatDelta(totalVentas, prev.Total)
	metrics.DeltaRegistros = formatDelta(float64(len(sales)), float64(prev.Registros))
	metrics.DeltaPrecio = formatDelta(precioPromedio, prev.Precio)

	return metrics, nil
}

// Alerts flags loss-making sales, thin margins and underperforming
// sellers in the filtered window.
func (s *SalesService) Alerts(ctx context.Context, f models.FilterSet) ([]models.Alert, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	alertas := []models.Alert{}
	if len(sales) == 0 {
		return alertas, nil
	}

	var negativos []models.Sale
	for _, v := range sales {
		if v.Margen != nil && *v.Margen < 0 {
			negativos = append(negativos, v)
		}
	}
	if len(negativos) > 0 {
		var perdida float64
		for _, v := range negativos {
			if v.TotalMargen != nil {
				perdida += *v.TotalMargen
			}
		}
		datos := make([]map[string]any, 0, 10)
		for _, v := range negativos {
			if len(datos) == 10 {
				break
			}
			datos = append(datos, map[string]any{
				"nombre":        v.Nombre,
				"precio":        v.Precio,
				"precio_compra": v.PrecioPromedioCompra,
				"margen":        v.Margen,
				"cantidad":      v.Cantidad,
			})
		}
		alertas = append(alertas, models.Alert{
			Tipo:    "error",
			Icono:   "🚨",
			Titulo:  fmt.Sprintf("%d ventas con margen negativo", len(negativos)),
			Detalle: fmt.Sprintf("Pérdida total: $%.2f", math.Abs(perdida)),
			Datos:   datos,
		})
	}

	var margenBajo []models.Sale
	for _, v := range sales {
		if v.Margen != nil && *v.Margen > 0 && v.MargenPorcentaje != nil && *v.MargenPorcentaje < 10 {
			margenBajo = append(margenBajo, v)
		}
	}
	if len(margenBajo) > 0 {
		datos := make([]map[string]any, 0, 10)
		for _, v := range margenBajo {
			if len(datos) == 10 {
				break
			}
			datos = append(datos, map[string]any{
				"nombre":            v.Nombre,
				"precio":            v.Precio,
				"margen_porcentaje": v.MargenPorcentaje,
				"cantidad":          v.Cantidad,
			})
		}
		alertas = append(alertas, models.Alert{
			Tipo:    "warning",
			Icono:   "⚠️",
			Titulo:  fmt.Sprintf("%d ventas con margen menor al 10%%", len(margenBajo)),
			Detalle: "Considera revisar los precios de estos productos",
			Datos:   datos,
		})
	}

	porVendedor := map[string]float64{}
	for _, v := range sales {
		if v.Vendedor != nil {
			porVendedor[*v.Vendedor] += v.TotalVenta
		}
	}
	if len(porVendedor) > 0 {
		var suma float64
		for _, total := range porVendedor {
			suma += total
		}
		promedio := suma / float64(len(porVendedor))

		var datos []map[string]any
		for vendedor, total := range porVendedor {
			if total < promedio*0.5 {
				datos = append(datos, map[string]any{"vendedor": vendedor, "total_venta": total})
			}
		}
		if len(datos) > 0 {
			alertas = append(alertas, models.Alert{
				Tipo:    "info",
				Icono:   "📉",
				Titulo:  fmt.Sprintf("%d vendedores bajo el 50%% del promedio", len(datos)),
				Detalle: fmt.Sprintf("Promedio de ventas: $%.2f", promedio),
				Datos:   datos,
			})
		}
	}

	return alertas, nil
}

// TopProducts ranks products by units sold.
func (s *SalesService) TopProducts(ctx context.Context, f models.FilterSet, limit int) ([]models.TopProduct, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	acc := map[string]*models.TopProduct{}
	for _, v := range sales {
		entry, ok := acc[v.Nombre]
		if !ok {
			entry = &models.TopProduct{Nombre: v.Nombre}
			acc[v.Nombre] = entry
		}
		entry.Cantidad += v.Cantidad
		entry.TotalVenta += v.TotalVenta
	}

	productos := make([]models.TopProduct, 0, len(acc))
	for _, entry := range acc {
		entry.TotalVenta = round2(entry.TotalVenta)
		productos = append(productos, *entry)
	}
	sort.Slice(productos, func(i, j int) bool { return productos[i].Cantidad > productos[j].Cantidad })
	if len(productos) > limit {
		productos = productos[:limit]
	}
	return productos, nil
}

// TopSellers ranks sellers by revenue.
func (s *SalesService) TopSellers(ctx context.Context, f models.FilterSet, limit int) ([]models.TopSeller, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	acc := map[string]*models.TopSeller{}
	for _, v := range sales {
		if v.Vendedor == nil {
			continue
		}
		entry, ok := acc[*v.Vendedor]
		if !ok {
			entry = &models.TopSeller{Vendedor: *v.Vendedor}
			acc[*v.Vendedor] = entry
		}
		entry.TotalVenta += v.TotalVenta
		entry.Cantidad += v.Cantidad
	}

	vendedores := make([]models.TopSeller, 0, len(acc))
	for _, entry := range acc {
		entry.TotalVenta = round2(entry.TotalVenta)
		vendedores = append(vendedores, *entry)
	}
	sort.Slice(vendedores, func(i, j int) bool { return vendedores[i].TotalVenta > vendedores[j].TotalVenta })
	if len(vendedores) > limit {
		vendedores = vendedores[:limit]
	}
	return vendedores, nil
}

// SalesByDay groups revenue and units per calendar day, ascending.
func (s *SalesService) SalesByDay(ctx context.Context, f models.FilterSet) ([]models.DayTotal, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	acc := map[string]*models.DayTotal{}
	for _, v := range sales {
		dia := v.FechaVenta.String()
		entry, ok := acc[dia]
		if !ok {
			entry = &models.DayTotal{Fecha: dia}
			acc[dia] = entry
		}
		entry.TotalVenta += v.TotalVenta
		entry.Cantidad += v.Cantidad
	}

	dias := make([]models.DayTotal, 0, len(acc))
	for _, entry := range acc {
		entry.TotalVenta = round2(entry.TotalVenta)
		dias = append(dias, *entry)
	}
	sort.Slice(dias, func(i, j int) bool { return dias[i].Fecha < dias[j].Fecha })
	return dias, nil
}

func (s *SalesService) groupRevenue(ctx context.Context, f models.FilterSet, pick func(models.Sale) *string) (map[string]float64, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	acc := map[string]float64{}
	for _, v := range sales {
		if key := pick(v); key != nil {
			acc[*key] += v.TotalVenta
		}
	}
	return acc, nil
}

// SalesBySeller returns the ten biggest sellers by revenue.
func (s *SalesService) SalesBySeller(ctx context.Context, f models.FilterSet) ([]models.SellerTotal, error) {
	acc, err := s.groupRevenue(ctx, f, func(v models.Sale) *string { return v.Vendedor })
	if err != nil {
		return nil, err
	}

	vendedores := make([]models.SellerTotal, 0, len(acc))
	for vendedor, total := range acc {
		vendedores = append(vendedores, models.SellerTotal{Vendedor: vendedor, TotalVenta: round2(total)})
	}
	sort.Slice(vendedores, func(i, j int) bool { return vendedores[i].TotalVenta > vendedores[j].TotalVenta })
	if len(vendedores) > 10 {
		vendedores = vendedores[:10]
	}
	return vendedores, nil
}

func (s *SalesService) SalesByFamily(ctx context.Context, f models.FilterSet) ([]models.FamilyTotal, error) {
	acc, err := s.groupRevenue(ctx, f, func(v models.Sale) *string { return v.Familia })
	if err != nil {
		return nil, err
	}

	familias := make([]models.FamilyTotal, 0, len(acc))
	for familia, total := range acc {
		familias = append(familias, models.FamilyTotal{Familia: familia, TotalVenta: round2(total)})
	}
	sort.Slice(familias, func(i, j int) bool { return familias[i].TotalVenta > familias[j].TotalVenta })
	return familias, nil
}

func (s *SalesService) SalesByMethod(ctx context.Context, f models.FilterSet) ([]models.MethodTotal, error) {
	acc, err := s.groupRevenue(ctx, f, func(v models.Sale) *string { return v.Metodo })
	if err != nil {
		return nil, err
	}

	metodos := make([]models.MethodTotal, 0, len(acc))
	for metodo, total := range acc {
		metodos = append(metodos, models.MethodTotal{Metodo: metodo, TotalVenta: round2(total)})
	}
	sort.Slice(metodos, func(i, j int) bool { return metodos[i].TotalVenta > metodos[j].TotalVenta })
	return metodos, nil
}

// TopProductsByQuantity ranks products by units only.
func (s *SalesService) TopProductsByQuantity(ctx context.Context, f models.FilterSet, limit int) ([]models.QuantityTotal, error) {
	sales, err := s.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}

	acc := map[string]int{}
	for _, v := range sales {
		acc[v.Nombre] += v.Cantidad
	}

	productos := make([]models.QuantityTotal, 0, len(acc))
	for nombre, cantidad := range acc {
		productos = append(productos, models.QuantityTotal{Nombre: nombre, Cantidad: cantidad})
	}
	sort.Slice(productos, func(i, j int) bool { return productos[i].Cantidad > productos[j].Cantidad })
	if len(productos) > limit {
		productos = productos[:limit]
	}
	return productos, nil
}

// FilterOptions collects the selectable values and bounds for the
// filter widgets. The six queries run concurrently.
func (s *SalesService) FilterOptions(ctx context.Context) (models.FilterOptions, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		options  models.FilterOptions
	)

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	distinct := func(column string, dest *[]string) {
		defer wg.Done()
		query := fmt.Sprintf(
			"SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s",
			column, salesTable, column, column,
		)
		var values []string
		if err := s.db.WithContext(ctx).Raw(query).Scan(&values).Error; err != nil {
			setErr(fmt.Errorf("distinct %s: %w", column, err))
			return
		}
		mu.Lock()
		*dest = values
		mu.Unlock()
	}

	wg.Add(6)
	go distinct("nombre", &options.Productos)
	go distinct("vendedor", &options.Vendedores)
	go distinct("familia", &options.Familias)
	go distinct("metodo", &options.Metodos)
	go distinct("proveedor_moda", &options.Proveedores)

	go func() {
		defer wg.Done()
		var bounds struct {
			PrecioMin   float64     `gorm:"column:precio_min"`
			PrecioMax   float64     `gorm:"column:precio_max"`
			CantidadMin int         `gorm:"column:cantidad_min"`
			CantidadMax int         `gorm:"column:cantidad_max"`
			FechaMin    models.Date `gorm:"column:fecha_min"`
			FechaMax    models.Date `gorm:"column:fecha_max"`
		}
		query := fmt.Sprintf(`
			SELECT
				COALESCE(MIN(precio), 0) AS precio_min,
				COALESCE(MAX(precio), 0) AS precio_max,
				COALESCE(MIN(cantidad), 0) AS cantidad_min,
				COALESCE(MAX(cantidad), 0) AS cantidad_max,
				COALESCE(MIN(fecha_venta), CURRENT_DATE) AS fecha_min,
				COALESCE(MAX(fecha_venta), CURRENT_DATE) AS fecha_max
			FROM %s
		`, salesTable)
		if err := s.db.WithContext(ctx).Raw(query).Scan(&bounds).Error; err != nil {
			setErr(fmt.Errorf("filter bounds: %w", err))
			return
		}
		mu.Lock()
		options.PrecioMin = bounds.PrecioMin
		options.PrecioMax = bounds.PrecioMax
		options.CantidadMin = bounds.CantidadMin
		options.CantidadMax = bounds.CantidadMax
		options.FechaMin = bounds.FechaMin
		options.FechaMax = bounds.FechaMax
		mu.Unlock()
	}()

	wg.Wait()
	if firstErr != nil {
		return models.FilterOptions{}, firstErr
	}

	// never return nil slices to the widgets
	for _, list := range []*[]string{&options.Productos, &options.Vendedores, &options.Familias, &options.Metodos, &options.Proveedores} {
		if *list == nil {
			*list = []string{}
		}
	}
	return options, nil
}
