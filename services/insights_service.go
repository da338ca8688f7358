package services

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
)

// InsightsService computes the executive KPIs and the generated
// observations shown at the top of the dashboard. Queries go through
// the pgx pool; every insight is independent and best-effort.
type InsightsService struct {
	pool *pgxpool.Pool
}

var insightsService *InsightsService

func GetInsightsService() *InsightsService {
	if insightsService == nil {
		insightsService = &InsightsService{pool: config.Pool}
	}
	return insightsService
}

// ExecutiveKPIs returns today, yesterday and month-to-date totals from
// the invoice table plus the active product count from the 30-day view.
func (s *InsightsService) ExecutiveKPIs(ctx context.Context) (models.ExecutiveKPIs, error) {
	var kpis models.ExecutiveKPIs

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN fecha::date = CURRENT_DATE THEN total END), 0) AS ventas_hoy,
			COALESCE(SUM(CASE WHEN fecha::date = CURRENT_DATE - 1 THEN total END), 0) AS ventas_ayer,
			COALESCE(SUM(CASE WHEN fecha >= date_trunc('month', CURRENT_DATE) THEN total END), 0) AS ventas_mes,
			COALESCE(AVG(CASE WHEN fecha >= date_trunc('month', CURRENT_DATE) THEN total END), 0) AS ticket_promedio
		FROM facturas
		WHERE fecha >= date_trunc('month', CURRENT_DATE) - INTERVAL '1 month'
	`
	err := s.pool.QueryRow(ctx, query).Scan(&kpis.VentasHoy, &kpis.VentasAyer, &kpis.VentasMes, &kpis.TicketPromedio)
	if err != nil {
		return models.ExecutiveKPIs{}, fmt.Errorf("kpis diarios: %w", err)
	}
	kpis.VentasHoy = round2(kpis.VentasHoy)
	kpis.VentasAyer = round2(kpis.VentasAyer)
	kpis.VentasMes = round2(kpis.VentasMes)
	kpis.TicketPromedio = round2(kpis.TicketPromedio)
	kpis.DeltaDia = formatDelta(kpis.VentasHoy, kpis.VentasAyer)

	// month units and margin come from the 30-day view, best-effort
	monthQuery := `
		SELECT
			COALESCE(SUM(cantidad), 0),
			COALESCE(SUM(CASE WHEN precio_promedio_compra IS NOT NULL
				THEN (precio - precio_promedio_compra) * cantidad END), 0),
			COUNT(DISTINCT nombre)
		FROM reportes_ventas_30dias
		WHERE fecha_venta >= date_trunc('month', CURRENT_DATE)
	`
	if err := s.pool.QueryRow(ctx, monthQuery).Scan(&kpis.UnidadesMes, &kpis.MargenMes, &kpis.ProductosActivos); err != nil {
		log.Printf("[insights.kpis] month aggregates failed: %v", err)
	}
	kpis.MargenMes = round2(kpis.MargenMes)

	return kpis, nil
}

// Insights generates the observation list. A failed query drops its
// insight and logs, it never fails the endpoint.
func (s *InsightsService) Insights(ctx context.Context) []models.Insight {
	insights := []models.Insight{}

	if insight, err := s.bestDayInsight(ctx); err != nil {
		log.Printf("[insights.best_day] %v", err)
	} else if insight != nil {
		insights = append(insights, *insight)
	}

	if insight, err := s.risingProductInsight(ctx); err != nil {
		log.Printf("[insights.rising_product] %v", err)
	} else if insight != nil {
		insights = append(insights, *insight)
	}

	if insight, err := s.slowFamilyInsight(ctx); err != nil {
		log.Printf("[insights.slow_family] %v", err)
	} else if insight != nil {
		insights = append(insights, *insight)
	}

	return insights
}

func (s *InsightsService) bestDayInsight(ctx context.Context) (*models.Insight, error) {
	query := `
		SELECT TO_CHAR(fecha_venta, 'TMDay'), SUM(precio * cantidad) AS total
		FROM reportes_ventas_30dias
		GROUP BY TO_CHAR(fecha_venta, 'TMDay'), EXTRACT(DOW FROM fecha_venta)
		ORDER BY total DESC
		LIMIT 1
	`
	var dia string
	var total float64
	if err := s.pool.QueryRow(ctx, query).Scan(&dia, &total); err != nil {
		return nil, err
	}
	return &models.Insight{
		Tipo:    "info",
		Icono:   "📅",
		Titulo:  fmt.Sprintf("Tu mejor día es %s", dia),
		Detalle: fmt.Sprintf("Acumula $%.0f en los últimos 30 días. Asegura stock y personal ese día.", total),
	}, nil
}

func (s *InsightsService) risingProductInsight(ctx context.Context) (*models.Insight, error) {
	query := `
		WITH semanas AS (
			SELECT
				nombre,
				SUM(CASE WHEN fecha_venta >= CURRENT_DATE - 7 THEN cantidad ELSE 0 END) AS reciente,
				SUM(CASE WHEN fecha_venta < CURRENT_DATE - 7 AND fecha_venta >= CURRENT_DATE - 14
					THEN cantidad ELSE 0 END) AS anterior
			FROM reportes_ventas_30dias
			GROUP BY nombre
		)
		SELECT nombre, reciente, anterior
		FROM semanas
		WHERE anterior > 0 AND reciente > anterior * 1.5
		ORDER BY reciente - anterior DESC
		LIMIT 1
	`
	var nombre string
	var reciente, anterior int
	if err := s.pool.QueryRow(ctx, query).Scan(&nombre, &reciente, &anterior); err != nil {
		return nil, err
	}
	return &models.Insight{
		Tipo:    "success",
		Icono:   "🚀",
		Titulo:  fmt.Sprintf("%s está despegando", nombre),
		Detalle: fmt.Sprintf("Pasó de %d a %d unidades semana contra semana. Revisa el stock disponible.", anterior, reciente),
	}, nil
}

func (s *InsightsService) slowFamilyInsight(ctx context.Context) (*models.Insight, error) {
	query := `
		SELECT familia, SUM(precio * cantidad) AS total
		FROM reportes_ventas_30dias
		WHERE familia IS NOT NULL
		GROUP BY familia
		HAVING SUM(precio * cantidad) > 0
		ORDER BY total ASC
		LIMIT 1
	`
	var familia string
	var total float64
	if err := s.pool.QueryRow(ctx, query).Scan(&familia, &total); err != nil {
		return nil, err
	}
	return &models.Insight{
		Tipo:    "warning",
		Icono:   "🐢",
		Titulo:  fmt.Sprintf("La familia %s es la más lenta", familia),
		Detalle: fmt.Sprintf("Solo $%.0f en 30 días. Considera promociones o reducir el surtido.", total),
	}, nil
}
