package services

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

// InventoryService crosses the live stock with the 30-day velocity to
// report coverage, rotation and inventory value.
type InventoryService struct {
	db    *gorm.DB
	sales *SalesService
	abc   *ABCService
}

var inventoryService *InventoryService

func GetInventoryService() *InventoryService {
	if inventoryService == nil {
		inventoryService = &InventoryService{
			db:    config.DB,
			sales: GetSalesService(),
			abc:   GetABCService(),
		}
	}
	return inventoryService
}

// Items joins the 30-day sales against the live inventory. The full
// outer join keeps products that sold out as well as ones that never
// sold in the window.
func (s *InventoryService) Items(ctx context.Context) ([]models.InventoryItem, error) {
	var rows []struct {
		Nombre          string   `gorm:"column:nombre"`
		Familia         *string  `gorm:"column:familia"`
		Proveedor       *string  `gorm:"column:proveedor"`
		StockActual     float64  `gorm:"column:stock_actual"`
		CantidadVendida int      `gorm:"column:cantidad_vendida"`
		TotalVentas     float64  `gorm:"column:total_ventas"`
		PrecioVenta     float64  `gorm:"column:precio_venta"`
		PrecioCompra    *float64 `gorm:"column:precio_compra"`
	}
	query := `
		WITH ventas AS (
			SELECT
				nombre,
				MAX(familia) AS familia,
				MAX(proveedor_moda) AS proveedor,
				SUM(cantidad) AS cantidad_vendida,
				SUM(precio * cantidad) AS total_ventas,
				MAX(precio) AS precio_venta,
				AVG(precio_promedio_compra) AS precio_compra
			FROM reportes_ventas_30dias
			GROUP BY nombre
		),
		stock AS (
			SELECT nombre, cantidad_disponible, precio FROM items
		)
		SELECT
			COALESCE(v.nombre, s.nombre) AS nombre,
			v.familia,
			v.proveedor,
			COALESCE(s.cantidad_disponible, 0) AS stock_actual,
			COALESCE(v.cantidad_vendida, 0) AS cantidad_vendida,
			COALESCE(v.total_ventas, 0) AS total_ventas,
			COALESCE(v.precio_venta, s.precio, 0) AS precio_venta,
			v.precio_compra
		FROM ventas v
		FULL OUTER JOIN stock s ON v.nombre = s.nombre
	`
	if err := s.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]models.InventoryItem, 0, len(rows))
	for _, r := range rows {
		ventaDiaria := float64(r.CantidadVendida) / 30

		item := models.InventoryItem{
			Nombre:          r.Nombre,
			Familia:         r.Familia,
			Proveedor:       r.Proveedor,
			StockActual:     int(r.StockActual),
			CantidadVendida: r.CantidadVendida,
			TotalVentas:     round2(r.TotalVentas),
			PrecioVenta:     r.PrecioVenta,
			PrecioCompra:    r.PrecioCompra,
			VentaDiaria:     round2(ventaDiaria),
		}

		if ventaDiaria > 0 {
			item.DiasCobertura = round1(r.StockActual / ventaDiaria)
		} else if r.StockActual > 0 {
			item.DiasCobertura = 999
		}

		switch {
		case item.DiasCobertura <= 3:
			item.EstadoStock = models.EstadoCritico
		case item.DiasCobertura <= models.DiasStockMinimo:
			item.EstadoStock = models.EstadoBajo
		case item.DiasCobertura <= models.DiasStockMaximo:
			item.EstadoStock = models.EstadoNormal
		default:
			item.EstadoStock = models.EstadoExceso
		}

		if r.StockActual > 0 {
			rotacion := round1(float64(r.CantidadVendida) * 12 / r.StockActual)
			item.Rotacion = &rotacion
		}

		item.StockMinimo = int(ventaDiaria * models.DiasStockMinimo)
		item.StockMaximo = int(ventaDiaria * models.DiasStockMaximo)

		precioCosto := r.PrecioVenta
		if r.PrecioCompra != nil && *r.PrecioCompra > 0 {
			precioCosto = *r.PrecioCompra
		}
		item.ValorInventario = round2(r.StockActual * precioCosto)

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		ei, ej := estadoOrder[items[i].EstadoStock], estadoOrder[items[j].EstadoStock]
		if ei != ej {
			return ei < ej
		}
		return items[i].VentaDiaria > items[j].VentaDiaria
	})
	return items, nil
}

// Summary counts each stock state and totals the inventory value.
func (s *InventoryService) Summary(ctx context.Context) (models.InventorySummary, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.InventorySummary{}, err
	}

	resumen := models.InventorySummary{TotalProductos: len(items)}
	for _, item := range items {
		resumen.ValorTotal += item.ValorInventario
		switch item.EstadoStock {
		case models.EstadoCritico:
			resumen.Criticos++
			resumen.ValorCriticos += item.ValorInventario
		case models.EstadoBajo:
			resumen.Bajos++
		case models.EstadoNormal:
			resumen.Normales++
		case models.EstadoExceso:
			resumen.Exceso++
			resumen.ValorExceso += item.ValorInventario
		}
	}
	resumen.ValorTotal = round2(resumen.ValorTotal)
	resumen.ValorCriticos = round2(resumen.ValorCriticos)
	resumen.ValorExceso = round2(resumen.ValorExceso)
	return resumen, nil
}

// Alerts returns only the products below the minimum coverage.
func (s *InventoryService) Alerts(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	alertas := []models.InventoryItem{}
	for _, item := range items {
		if item.EstadoStock == models.EstadoCritico || item.EstadoStock == models.EstadoBajo {
			alertas = append(alertas, item)
		}
	}
	return alertas, nil
}

// ValueByFamily breaks the inventory value down per family.
func (s *InventoryService) ValueByFamily(ctx context.Context) ([]models.FamilyInventoryValue, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	acc := map[string]*models.FamilyInventoryValue{}
	for _, item := range items {
		familia := "Sin familia"
		if item.Familia != nil && *item.Familia != "" {
			familia = *item.Familia
		}
		entry, ok := acc[familia]
		if !ok {
			entry = &models.FamilyInventoryValue{Familia: familia}
			acc[familia] = entry
		}
		entry.Valor += item.ValorInventario
		switch item.EstadoStock {
		case models.EstadoCritico:
			entry.Criticos++
		case models.EstadoBajo:
			entry.Bajos++
		}
	}

	valores := make([]models.FamilyInventoryValue, 0, len(acc))
	for _, entry := range acc {
		entry.Valor = round2(entry.Valor)
		valores = append(valores, *entry)
	}
	sort.Slice(valores, func(i, j int) bool { return valores[i].Valor > valores[j].Valor })
	return valores, nil
}

// ValueByProvider breaks the inventory value down per provider.
func (s *InventoryService) ValueByProvider(ctx context.Context) ([]models.ProviderInventoryValue, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	acc := map[string]*models.ProviderInventoryValue{}
	for _, item := range items {
		proveedor := "Sin proveedor"
		if item.Proveedor != nil && *item.Proveedor != "" {
			proveedor = *item.Proveedor
		}
		entry, ok := acc[proveedor]
		if !ok {
			entry = &models.ProviderInventoryValue{Proveedor: proveedor}
			acc[proveedor] = entry
		}
		entry.Valor += item.ValorInventario
		entry.Productos++
	}

	valores := make([]models.ProviderInventoryValue, 0, len(acc))
	for _, entry := range acc {
		entry.Valor = round2(entry.Valor)
		valores = append(valores, *entry)
	}
	sort.Slice(valores, func(i, j int) bool { return valores[i].Valor > valores[j].Valor })
	return valores, nil
}

// ProductDetail combines the inventory row with the ABC class and the
// daily sales series for one product.
func (s *InventoryService) ProductDetail(ctx context.Context, nombre string) (models.InventoryProductDetail, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.InventoryProductDetail{}, err
	}

	var detail models.InventoryProductDetail
	found := false
	for _, item := range items {
		if item.Nombre == nombre {
			detail.InventoryItem = item
			found = true
			break
		}
	}
	if !found {
		return models.InventoryProductDetail{}, fmt.Errorf("producto %q no encontrado", nombre)
	}

	// ABC class is decoration, the detail stands without it
	if analysis, err := s.abc.Analyze(ctx, models.FilterSet{}, models.ABCCriterioVentas); err == nil {
		for _, p := range analysis.Productos {
			if p.Nombre == nombre {
				categoria := p.Categoria
				detail.ClasificacionABC = &categoria
				break
			}
		}
	}

	sales, err := s.sales.FetchSales(ctx, models.FilterSet{Productos: []string{nombre}})
	if err != nil {
		return models.InventoryProductDetail{}, err
	}
	porDia := map[string]*models.DailySales{}
	for _, v := range sales {
		key := v.FechaVenta.String()
		d, ok := porDia[key]
		if !ok {
			d = &models.DailySales{Fecha: v.FechaVenta}
			porDia[key] = d
		}
		d.Ventas += v.TotalVenta
	}
	dias := make([]string, 0, len(porDia))
	for d := range porDia {
		dias = append(dias, d)
	}
	sort.Strings(dias)
	detail.VentasDiarias = make([]models.DailySales, 0, len(dias))
	for _, d := range dias {
		punto := porDia[d]
		punto.Ventas = round2(punto.Ventas)
		detail.VentasDiarias = append(detail.VentasDiarias, *punto)
	}

	return detail, nil
}
