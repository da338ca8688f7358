package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

// restock parameters, in days
const (
	leadTimeDays    = 7
	safetyStockDays = 3
	targetStockDays = 30
	assumedMargin   = 0.25
)

// PurchasingService turns the sales velocity and the current stock
// into restock suggestions, reorder points and purchase orders.
type PurchasingService struct {
	db    *gorm.DB
	sales *SalesService
}

var purchasingService *PurchasingService

func GetPurchasingService() *PurchasingService {
	if purchasingService == nil {
		purchasingService = &PurchasingService{db: config.DB, sales: GetSalesService()}
	}
	return purchasingService
}

type stockInfo struct {
	Disponible float64
	Precio     float64
}

// currentStock reads the live inventory. A failed read degrades to
// "no stock known" instead of failing the suggestion list.
func (s *PurchasingService) currentStock(ctx context.Context) map[string]stockInfo {
	var rows []struct {
		Nombre             string  `gorm:"column:nombre"`
		CantidadDisponible float64 `gorm:"column:cantidad_disponible"`
		Precio             float64 `gorm:"column:precio"`
	}
	query := "SELECT nombre, COALESCE(cantidad_disponible, 0) AS cantidad_disponible, COALESCE(precio, 0) AS precio FROM items"
	if err := s.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return map[string]stockInfo{}
	}

	stock := make(map[string]stockInfo, len(rows))
	for _, r := range rows {
		if r.Nombre != "" {
			stock[r.Nombre] = stockInfo{Disponible: r.CantidadDisponible, Precio: r.Precio}
		}
	}
	return stock
}

var priorityOrder = map[string]int{
	models.PrioridadUrgente: 0,
	models.PrioridadAlta:    1,
	models.PrioridadMedia:   2,
	models.PrioridadBaja:    3,
}

func priorityFor(diasStock float64) string {
	switch {
	case diasStock <= 3:
		return models.PrioridadUrgente
	case diasStock <= 7:
		return models.PrioridadAlta
	case diasStock <= 15:
		return models.PrioridadMedia
	default:
		return models.PrioridadBaja
	}
}

// Suggestions computes restock suggestions: daily velocity from the
// 30-day window, suggested quantity covering the same demand plus a
// 20% safety margin, priority from days of stock left. Products whose
// stock already covers the demand are skipped.
func (s *PurchasingService) Suggestions(ctx context.Context, f models.FilterSet) ([]models.PurchaseSuggestion, error) {
	sales, err := s.sales.FetchSales(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return []models.PurchaseSuggestion{}, nil
	}
	stock := s.currentStock(ctx)

	type productAcc struct {
		unidades     int
		precioCompra *float64
		precioVenta  float64
		proveedor    *string
		familia      *string
	}
	productos := map[string]*productAcc{}
	for _, v := range sales {
		acc, ok := productos[v.Nombre]
		if !ok {
			acc = &productAcc{
				precioCompra: v.PrecioPromedioCompra,
				proveedor:    v.ProveedorModa,
				familia:      v.Familia,
			}
			productos[v.Nombre] = acc
		}
		acc.unidades += v.Cantidad
		acc.precioVenta = v.Precio // last seen price
	}

	sugerencias := []models.PurchaseSuggestion{}
	for nombre, acc := range productos {
		ventaDiaria := float64(acc.unidades) / 30

		stockActual := 0.0
		if info, ok := stock[nombre]; ok {
			stockActual = info.Disponible
		}

		diasStock := 999.0
		if ventaDiaria > 0 {
			diasStock = stockActual / ventaDiaria
		}

		cantidadSugerida := int(float64(acc.unidades)*1.2 - stockActual)
		if cantidadSugerida <= 0 {
			continue
		}

		precioCompra := 0.0
		if acc.precioCompra != nil {
			precioCompra = *acc.precioCompra
		} else if info, ok := stock[nombre]; ok {
			precioCompra = info.Precio
		}
		costoEstimado := float64(cantidadSugerida) * precioCompra

		sugerencia := models.PurchaseSuggestion{
			Nombre:             nombre,
			Proveedor:          acc.proveedor,
			Familia:            acc.familia,
			CantidadDisponible: int(stockActual),
			VentaDiaria:        round1(ventaDiaria),
			DiasStock:          round1(diasStock),
			CantidadSugerida:   cantidadSugerida,
			CostoEstimado:      round2(costoEstimado),
			Prioridad:          priorityFor(diasStock),
		}
		if precioCompra > 0 {
			pc := precioCompra
			sugerencia.PrecioCompra = &pc
		}
		unidades := acc.unidades
		sugerencia.UnidadesVendidas = &unidades
		if costoEstimado > 0 {
			roi := round2(costoEstimado * assumedMargin)
			sugerencia.ROIEstimado = &roi
		}
		if ventaDiaria >= 0.5 {
			rop := int(ventaDiaria * float64(leadTimeDays+safetyStockDays))
			sugerencia.PuntoReorden = &rop
		}
		sugerencias = append(sugerencias, sugerencia)
	}

	sort.SliceStable(sugerencias, func(i, j int) bool {
		pi, pj := priorityOrder[sugerencias[i].Prioridad], priorityOrder[sugerencias[j].Prioridad]
		if pi != pj {
			return pi < pj
		}
		return sugerencias[i].DiasStock < sugerencias[j].DiasStock
	})
	return sugerencias, nil
}

// Summary assembles totals, priority buckets, the per-provider view
// ordered by urgency and the out-of-stock report.
func (s *PurchasingService) Summary(ctx context.Context, f models.FilterSet) (models.PurchasingSummary, error) {
	sugerencias, err := s.Suggestions(ctx, f)
	if err != nil {
		return models.PurchasingSummary{}, err
	}
	agotados := s.OutOfStock(ctx)

	var inversionTotal float64
	var totalUnidades int
	for _, sg := range sugerencias {
		inversionTotal += sg.CostoEstimado
		totalUnidades += sg.CantidadSugerida
	}
	ventasEsperadas := inversionTotal * (1 + assumedMargin)
	roiEsperado := 0.0
	if inversionTotal > 0 {
		roiEsperado = (ventasEsperadas - inversionTotal) / inversionTotal * 100
	}

	buckets := map[string]*models.PriorityBucket{
		"urgentes": {}, "altas": {}, "medias": {}, "bajas": {},
	}
	bucketFor := map[string]string{
		models.PrioridadUrgente: "urgentes",
		models.PrioridadAlta:    "altas",
		models.PrioridadMedia:   "medias",
		models.PrioridadBaja:    "bajas",
	}

	porProveedor := map[string]*models.ProviderOrderSummary{}
	for _, sg := range sugerencias {
		b := buckets[bucketFor[sg.Prioridad]]
		b.Count++
		b.Inversion += sg.CostoEstimado

		prov := "Sin proveedor"
		if sg.Proveedor != nil {
			prov = *sg.Proveedor
		}
		entry, ok := porProveedor[prov]
		if !ok {
			entry = &models.ProviderOrderSummary{Proveedor: prov}
			porProveedor[prov] = entry
		}
		entry.Productos++
		entry.Unidades += sg.CantidadSugerida
		entry.Inversion += sg.CostoEstimado
		switch sg.Prioridad {
		case models.PrioridadUrgente:
			entry.Urgentes++
		case models.PrioridadAlta:
			entry.Altas++
		}
	}

	proveedores := make([]models.ProviderOrderSummary, 0, len(porProveedor))
	for _, entry := range porProveedor {
		entry.Inversion = round2(entry.Inversion)
		proveedores = append(proveedores, *entry)
	}
	sort.Slice(proveedores, func(i, j int) bool {
		ui := proveedores[i].Urgentes*1000 + proveedores[i].Altas
		uj := proveedores[j].Urgentes*1000 + proveedores[j].Altas
		if ui != uj {
			return ui > uj
		}
		return proveedores[i].Inversion > proveedores[j].Inversion
	})
	if len(proveedores) > 15 {
		proveedores = proveedores[:15]
	}

	porPrioridad := make(map[string]models.PriorityBucket, len(buckets))
	for name, b := range buckets {
		b.Inversion = round2(b.Inversion)
		porPrioridad[name] = *b
	}

	return models.PurchasingSummary{
		Resumen: models.PurchasingTotals{
			TotalProductos:      len(sugerencias),
			TotalUnidades:       totalUnidades,
			InversionTotal:      round2(inversionTotal),
			VentasEsperadas:     round2(ventasEsperadas),
			ROIEsperado:         round1(roiEsperado),
			MargenPromedioUsado: assumedMargin * 100,
		},
		PorPrioridad: porPrioridad,
		PorProveedor: proveedores,
		Agotados:     agotados,
		Sugerencias:  sugerencias,
	}, nil
}

// OutOfStock reports selling products with no stock left, split by how
// recently the last sale happened. Best-effort: a query failure
// returns the empty report.
func (s *PurchasingService) OutOfStock(ctx context.Context) models.OutOfStockReport {
	var rows []struct {
		Nombre         string      `gorm:"column:nombre"`
		Proveedor      *string     `gorm:"column:proveedor"`
		Familia        *string     `gorm:"column:familia"`
		UltimaVenta    models.Date `gorm:"column:ultima_venta"`
		PrecioPromedio float64     `gorm:"column:precio_promedio"`
		VentaDiaria    float64     `gorm:"column:venta_diaria"`
		Periodo        string      `gorm:"column:periodo"`
	}
	query := `
		WITH ventas_recientes AS (
			SELECT
				nombre,
				proveedor_moda AS proveedor,
				familia,
				SUM(cantidad) AS cantidad_vendida,
				MAX(fecha_venta) AS ultima_venta,
				AVG(precio) AS precio_promedio,
				SUM(cantidad) / 30.0 AS venta_diaria
			FROM reportes_ventas_30dias
			GROUP BY nombre, proveedor_moda, familia
		),
		stock_actual AS (
			SELECT nombre, cantidad_disponible AS stock FROM items
		)
		SELECT
			v.nombre, v.proveedor, v.familia, v.ultima_venta,
			v.precio_promedio, v.venta_diaria,
			CASE
				WHEN v.ultima_venta >= CURRENT_DATE - INTERVAL '7 days' THEN 'semana'
				WHEN v.ultima_venta >= CURRENT_DATE - INTERVAL '14 days' THEN '2semanas'
				ELSE 'antiguo'
			END AS periodo
		FROM ventas_recientes v
		LEFT JOIN stock_actual s ON v.nombre = s.nombre
		WHERE COALESCE(s.stock, 0) <= 0 AND v.cantidad_vendida > 0
		ORDER BY v.ultima_venta DESC
	`
	report := models.OutOfStockReport{
		UltimaSemana:    models.OutOfStockBucket{Productos: []models.OutOfStockProduct{}},
		Ultimas2Semanas: models.OutOfStockBucket{Productos: []models.OutOfStockProduct{}},
	}
	if err := s.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return report
	}

	for _, r := range rows {
		cantidadSugerida := int(r.VentaDiaria * 15)
		if cantidadSugerida < 1 {
			cantidadSugerida = 1
		}
		ultimaVenta := r.UltimaVenta.String()
		producto := models.OutOfStockProduct{
			Nombre:           r.Nombre,
			Proveedor:        r.Proveedor,
			Familia:          r.Familia,
			UltimaVenta:      &ultimaVenta,
			VentaDiaria:      round2(r.VentaDiaria),
			CantidadSugerida: cantidadSugerida,
			VentasPerdidas:   round2(r.VentaDiaria * r.PrecioPromedio * 7),
		}

		switch r.Periodo {
		case "semana":
			if len(report.UltimaSemana.Productos) < 20 {
				report.UltimaSemana.Productos = append(report.UltimaSemana.Productos, producto)
			}
			report.UltimaSemana.Total++
			report.UltimaSemana.VentasPerdidas = round2(report.UltimaSemana.VentasPerdidas + producto.VentasPerdidas)
		case "2semanas":
			if len(report.Ultimas2Semanas.Productos) < 20 {
				report.Ultimas2Semanas.Productos = append(report.Ultimas2Semanas.Productos, producto)
			}
			report.Ultimas2Semanas.Total++
			report.Ultimas2Semanas.VentasPerdidas = round2(report.Ultimas2Semanas.VentasPerdidas + producto.VentasPerdidas)
		}
	}
	return report
}

// ReorderPoints lists products moving at least half a unit a day with
// their reorder point (lead time + safety stock) and 30-day target.
func (s *PurchasingService) ReorderPoints(ctx context.Context, f models.FilterSet) ([]models.ReorderPoint, error) {
	sugerencias, err := s.Suggestions(ctx, f)
	if err != nil {
		return nil, err
	}

	puntos := []models.ReorderPoint{}
	for _, sg := range sugerencias {
		if sg.VentaDiaria < 0.5 {
			continue
		}
		puntoReorden := int(sg.VentaDiaria * float64(leadTimeDays+safetyStockDays))
		stockObjetivo := int(sg.VentaDiaria * targetStockDays)

		estado := "🟢 OK"
		if sg.CantidadDisponible < puntoReorden {
			estado = "🔴 Por debajo"
		}
		cantidadPedir := stockObjetivo - sg.CantidadDisponible
		if cantidadPedir < 0 {
			cantidadPedir = 0
		}

		puntos = append(puntos, models.ReorderPoint{
			Nombre:        sg.Nombre,
			Proveedor:     sg.Proveedor,
			Familia:       sg.Familia,
			StockActual:   sg.CantidadDisponible,
			VentaDiaria:   sg.VentaDiaria,
			PuntoReorden:  puntoReorden,
			StockObjetivo: stockObjetivo,
			Estado:        estado,
			CantidadPedir: cantidadPedir,
		})
	}

	sort.SliceStable(puntos, func(i, j int) bool {
		bi, bj := puntos[i].Estado == "🔴 Por debajo", puntos[j].Estado == "🔴 Por debajo"
		if bi != bj {
			return bi
		}
		return puntos[i].VentaDiaria > puntos[j].VentaDiaria
	})
	if len(puntos) > 100 {
		puntos = puntos[:100]
	}
	return puntos, nil
}

// ProviderSummaries groups the suggestions by provider.
func (s *PurchasingService) ProviderSummaries(ctx context.Context, f models.FilterSet) ([]models.ProviderPurchaseSummary, error) {
	sugerencias, err := s.Suggestions(ctx, f)
	if err != nil {
		return nil, err
	}

	acc := map[string]*models.ProviderPurchaseSummary{}
	for _, sg := range sugerencias {
		if sg.Proveedor == nil {
			continue
		}
		entry, ok := acc[*sg.Proveedor]
		if !ok {
			entry = &models.ProviderPurchaseSummary{Proveedor: *sg.Proveedor}
			acc[*sg.Proveedor] = entry
		}
		entry.Productos++
		entry.Unidades += sg.CantidadSugerida
		entry.CostoTotal += sg.CostoEstimado
	}

	resumen := make([]models.ProviderPurchaseSummary, 0, len(acc))
	for _, entry := range acc {
		entry.CostoTotal = round2(entry.CostoTotal)
		resumen = append(resumen, *entry)
	}
	sort.Slice(resumen, func(i, j int) bool { return resumen[i].CostoTotal > resumen[j].CostoTotal })
	return resumen, nil
}

// StockAlerts summarizes the urgent end of the suggestion list.
func (s *PurchasingService) StockAlerts(ctx context.Context, f models.FilterSet) (models.StockAlerts, error) {
	sugerencias, err := s.Suggestions(ctx, f)
	if err != nil {
		return models.StockAlerts{}, err
	}

	alerts := models.StockAlerts{Urgentes: models.StockAlertBucket{Items: []models.PurchaseSuggestion{}}}
	for _, sg := range sugerencias {
		switch sg.Prioridad {
		case models.PrioridadUrgente:
			alerts.Urgentes.Count++
			alerts.Urgentes.Costo = round2(alerts.Urgentes.Costo + sg.CostoEstimado)
			if len(alerts.Urgentes.Items) < 10 {
				alerts.Urgentes.Items = append(alerts.Urgentes.Items, sg)
			}
		case models.PrioridadAlta:
			alerts.Altos.Count++
			alerts.Altos.Costo = round2(alerts.Altos.Costo + sg.CostoEstimado)
		case models.PrioridadMedia:
			alerts.Medios.Count++
			alerts.Medios.Costo = round2(alerts.Medios.Costo + sg.CostoEstimado)
		}
	}
	return alerts, nil
}

// ProviderOrderSheet builds the detailed order sheet for one provider,
// items sorted by how soon they run out.
func (s *PurchasingService) ProviderOrderSheet(ctx context.Context, proveedor string, f models.FilterSet) (models.ProviderOrder, error) {
	sugerencias, err := s.Suggestions(ctx, f)
	if err != nil {
		return models.ProviderOrder{}, err
	}

	items := []models.ProviderOrderItem{}
	var totalUnidades int
	var costoTotal float64
	for _, sg := range sugerencias {
		prov := "Sin proveedor"
		if sg.Proveedor != nil {
			prov = *sg.Proveedor
		}
		if prov != proveedor {
			continue
		}
		items = append(items, models.ProviderOrderItem{
			Nombre:         sg.Nombre,
			Familia:        sg.Familia,
			StockActual:    sg.CantidadDisponible,
			DiasStock:      sg.DiasStock,
			Cantidad:       sg.CantidadSugerida,
			PrecioUnitario: sg.PrecioCompra,
			Subtotal:       sg.CostoEstimado,
			Prioridad:      sg.Prioridad,
		})
		totalUnidades += sg.CantidadSugerida
		costoTotal += sg.CostoEstimado
	}
	sort.Slice(items, func(i, j int) bool { return items[i].DiasStock < items[j].DiasStock })

	ventasEsperadas := costoTotal * (1 + assumedMargin)
	return models.ProviderOrder{
		Proveedor:        proveedor,
		FechaGeneracion:  time.Now().Format("2006-01-02"),
		TotalProductos:   len(items),
		TotalUnidades:    totalUnidades,
		InversionTotal:   round2(costoTotal),
		VentasEsperadas:  round2(ventasEsperadas),
		GananciaEsperada: round2(ventasEsperadas - costoTotal),
		Items:            items,
	}, nil
}

// GenerateOrder builds a purchase order for one provider, optionally
// keeping only items at or above a minimum priority, and persists it.
// This is the mutation after which cached suggestion views go stale.
func (s *PurchasingService) GenerateOrder(ctx context.Context, proveedor string, f models.FilterSet, prioridadMinima, generatedBy string) (models.PurchaseOrder, error) {
	sugerencias, err := s.Suggestions(ctx, f)
	if err != nil {
		return models.PurchaseOrder{}, err
	}

	included := map[string][]string{
		models.PrioridadUrgente: {models.PrioridadUrgente},
		models.PrioridadAlta:    {models.PrioridadUrgente, models.PrioridadAlta},
		models.PrioridadMedia:   {models.PrioridadUrgente, models.PrioridadAlta, models.PrioridadMedia},
	}

	items := []models.PurchaseSuggestion{}
	var totalUnidades int
	var costoTotal float64
	for _, sg := range sugerencias {
		if sg.Proveedor == nil || *sg.Proveedor != proveedor {
			continue
		}
		if prioridadMinima != "" {
			allowed, ok := included[prioridadMinima]
			if ok {
				match := false
				for _, p := range allowed {
					if sg.Prioridad == p {
						match = true
						break
					}
				}
				if !match {
					continue
				}
			}
		}
		items = append(items, sg)
		totalUnidades += sg.CantidadSugerida
		costoTotal += sg.CostoEstimado
	}

	order := models.PurchaseOrder{
		ID:             uuid.New(),
		Proveedor:      proveedor,
		Fecha:          time.Now(),
		TotalProductos: len(items),
		TotalUnidades:  totalUnidades,
		CostoTotal:     round2(costoTotal),
		Items:          items,
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("encode order items: %w", err)
	}
	record := models.PurchaseOrderRecord{
		ID:             order.ID,
		Proveedor:      order.Proveedor,
		TotalProductos: order.TotalProductos,
		TotalUnidades:  order.TotalUnidades,
		CostoTotal:     order.CostoTotal,
		Items:          itemsJSON,
		GeneratedBy:    generatedBy,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("persist order: %w", err)
	}

	return order, nil
}

// OrderHistory lists persisted orders, newest first.
func (s *PurchasingService) OrderHistory(ctx context.Context, proveedor string, limit int) ([]models.PurchaseOrderRecord, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if proveedor != "" {
		query = query.Where("proveedor = ?", proveedor)
	}
	var records []models.PurchaseOrderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
