package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Purchase priority tiers, ordered from most to least urgent. The
// emoji prefix is part of the wire value the dashboard renders.
const (
	PrioridadUrgente = "🔴 Urgente"
	PrioridadAlta    = "🟠 Alta"
	PrioridadMedia   = "🟡 Media"
	PrioridadBaja    = "🟢 Baja"
)

type PurchaseSuggestion struct {
	Nombre             string   `json:"nombre"`
	Proveedor          *string  `json:"proveedor"`
	Familia            *string  `json:"familia"`
	CantidadDisponible int      `json:"cantidad_disponible"`
	VentaDiaria        float64  `json:"venta_diaria"`
	DiasStock          float64  `json:"dias_stock"`
	CantidadSugerida   int      `json:"cantidad_sugerida"`
	PrecioCompra       *float64 `json:"precio_compra"`
	CostoEstimado      float64  `json:"costo_estimado"`
	Prioridad          string   `json:"prioridad"`
	ROIEstimado        *float64 `json:"roi_estimado,omitempty"`
	UnidadesVendidas   *int     `json:"unidades_vendidas_periodo,omitempty"`
	PuntoReorden       *int     `json:"punto_reorden,omitempty"`
}

type PurchasingTotals struct {
	TotalProductos      int     `json:"total_productos"`
	TotalUnidades       int     `json:"total_unidades"`
	InversionTotal      float64 `json:"inversion_total"`
	VentasEsperadas     float64 `json:"ventas_esperadas"`
	ROIEsperado         float64 `json:"roi_esperado"`
	MargenPromedioUsado float64 `json:"margen_promedio_usado"`
}

type PriorityBucket struct {
	Count     int     `json:"count"`
	Inversion float64 `json:"inversion"`
}

type ProviderOrderSummary struct {
	Proveedor string  `json:"proveedor"`
	Productos int     `json:"productos"`
	Unidades  int     `json:"unidades"`
	Inversion float64 `json:"inversion"`
	Urgentes  int     `json:"urgentes"`
	Altas     int     `json:"altas"`
}

// PurchasingSummary is the complete purchasing overview: totals,
// priority buckets, per-provider grouping ordered by urgency, the
// out-of-stock report and the raw suggestion list.
type PurchasingSummary struct {
	Resumen      PurchasingTotals          `json:"resumen"`
	PorPrioridad map[string]PriorityBucket `json:"por_prioridad"`
	PorProveedor []ProviderOrderSummary    `json:"por_proveedor"`
	Agotados     OutOfStockReport          `json:"agotados"`
	Sugerencias  []PurchaseSuggestion      `json:"sugerencias"`
}

type OutOfStockProduct struct {
	Nombre           string  `json:"nombre"`
	Proveedor        *string `json:"proveedor"`
	Familia          *string `json:"familia"`
	UltimaVenta      *string `json:"ultima_venta"`
	VentaDiaria      float64 `json:"venta_diaria"`
	CantidadSugerida int     `json:"cantidad_sugerida"`
	VentasPerdidas   float64 `json:"ventas_perdidas"`
}

type OutOfStockBucket struct {
	Total          int                 `json:"total"`
	Productos      []OutOfStockProduct `json:"productos"`
	VentasPerdidas float64             `json:"ventas_perdidas"`
}

type OutOfStockReport struct {
	UltimaSemana    OutOfStockBucket `json:"ultima_semana"`
	Ultimas2Semanas OutOfStockBucket `json:"ultimas_2_semanas"`
}

type ReorderPoint struct {
	Nombre        string  `json:"nombre"`
	Proveedor     *string `json:"proveedor"`
	Familia       *string `json:"familia"`
	StockActual   int     `json:"stock_actual"`
	VentaDiaria   float64 `json:"venta_diaria"`
	PuntoReorden  int     `json:"punto_reorden"`
	StockObjetivo int     `json:"stock_objetivo"`
	Estado        string  `json:"estado"`
	CantidadPedir int     `json:"cantidad_pedir"`
}

type ProviderPurchaseSummary struct {
	Proveedor  string  `json:"proveedor"`
	Productos  int     `json:"productos"`
	Unidades   int     `json:"unidades"`
	CostoTotal float64 `json:"costo_total"`
}

type StockAlertBucket struct {
	Count int                  `json:"count"`
	Costo float64              `json:"costo"`
	Items []PurchaseSuggestion `json:"items,omitempty"`
}

type StockAlerts struct {
	Urgentes StockAlertBucket `json:"urgentes"`
	Altos    StockAlertBucket `json:"altos"`
	Medios   StockAlertBucket `json:"medios"`
}

type ProviderOrderItem struct {
	Nombre         string   `json:"nombre"`
	Familia        *string  `json:"familia"`
	StockActual    int      `json:"stock_actual"`
	DiasStock      float64  `json:"dias_stock"`
	Cantidad       int      `json:"cantidad"`
	PrecioUnitario *float64 `json:"precio_unitario"`
	Subtotal       float64  `json:"subtotal"`
	Prioridad      string   `json:"prioridad"`
}

// ProviderOrder is the detailed order sheet for one provider.
type ProviderOrder struct {
	Proveedor        string              `json:"proveedor"`
	FechaGeneracion  string              `json:"fecha_generacion"`
	TotalProductos   int                 `json:"total_productos"`
	TotalUnidades    int                 `json:"total_unidades"`
	InversionTotal   float64             `json:"inversion_total"`
	VentasEsperadas  float64             `json:"ventas_esperadas"`
	GananciaEsperada float64             `json:"ganancia_esperada"`
	Items            []ProviderOrderItem `json:"items"`
}

// PurchaseOrderRecord persists a generated order so it can be exported
// or emailed later. Items keep the full suggestion list as JSONB.
type PurchaseOrderRecord struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Proveedor      string         `json:"proveedor" gorm:"not null;index"`
	TotalProductos int            `json:"total_productos"`
	TotalUnidades  int            `json:"total_unidades"`
	CostoTotal     float64        `json:"costo_total"`
	Items          datatypes.JSON `json:"items" gorm:"type:jsonb"`
	GeneratedBy    string         `json:"generated_by"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (PurchaseOrderRecord) TableName() string {
	return "purchase_orders"
}

// PurchaseOrder is the wire shape returned by order generation.
type PurchaseOrder struct {
	ID             uuid.UUID            `json:"id"`
	Proveedor      string               `json:"proveedor"`
	Fecha          time.Time            `json:"fecha"`
	TotalProductos int                  `json:"total_productos"`
	TotalUnidades  int                  `json:"total_unidades"`
	CostoTotal     float64              `json:"costo_total"`
	Items          []PurchaseSuggestion `json:"items"`
}
