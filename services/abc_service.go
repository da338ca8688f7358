package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/jupabego97/reportes-react-sub000/models"
)

// ABCService runs Pareto classification over the filtered sales.
type ABCService struct {
	sales *SalesService
}

var abcService *ABCService

func GetABCService() *ABCService {
	if abcService == nil {
		abcService = &ABCService{sales: GetSalesService()}
	}
	return abcService
}

type abcAccum struct {
	totalVenta    float64
	cantidad      int
	costoTotal    float64
	transacciones int
	familia       *string
	proveedor     *string
}

func (a *abcAccum) margen() *float64 {
	if a.costoTotal <= 0 {
		return nil
	}
	m := a.totalVenta - a.costoTotal
	return &m
}

func criterionValue(criterio string, a *abcAccum) float64 {
	switch criterio {
	case models.ABCCriterioCantidad:
		return float64(a.cantidad)
	case models.ABCCriterioMargen:
		if m := a.margen(); m != nil {
			return *m
		}
		return 0
	case models.ABCCriterioFrecuencia:
		return float64(a.transacciones)
	default:
		return a.totalVenta
	}
}

// Analyze classifies products by cumulative share of the chosen
// criterion: <=80% is A, <=95% is B, the tail is C.
func (s *ABCService) Analyze(ctx context.Context, f models.FilterSet, criterio string) (models.ABCAnalysis, error) {
	switch criterio {
	case models.ABCCriterioVentas, models.ABCCriterioCantidad, models.ABCCriterioMargen, models.ABCCriterioFrecuencia:
	case "":
		criterio = models.ABCCriterioVentas
	default:
		return models.ABCAnalysis{}, fmt.Errorf("unknown criterio %q", criterio)
	}

	sales, err := s.sales.FetchSales(ctx, f)
	if err != nil {
		return models.ABCAnalysis{}, err
	}
	if len(sales) == 0 {
		return emptyABCAnalysis(), nil
	}

	productos := map[string]*abcAccum{}
	var orden []string
	for _, v := range sales {
		acc, ok := productos[v.Nombre]
		if !ok {
			acc = &abcAccum{familia: v.Familia, proveedor: v.ProveedorModa}
			productos[v.Nombre] = acc
			orden = append(orden, v.Nombre)
		}
		acc.totalVenta += v.TotalVenta
		acc.cantidad += v.Cantidad
		acc.transacciones++
		if v.PrecioPromedioCompra != nil {
			acc.costoTotal += *v.PrecioPromedioCompra * float64(v.Cantidad)
		}
	}

	sort.SliceStable(orden, func(i, j int) bool {
		return criterionValue(criterio, productos[orden[i]]) > criterionValue(criterio, productos[orden[j]])
	})

	var totalValor, totalVentas, totalMargen float64
	for _, nombre := range orden {
		acc := productos[nombre]
		totalValor += criterionValue(criterio, acc)
		totalVentas += acc.totalVenta
		if m := acc.margen(); m != nil {
			totalMargen += *m
		}
	}

	rows := make([]models.ABCProduct, 0, len(orden))
	acumulado := 0.0
	for _, nombre := range orden {
		acc := productos[nombre]
		porcentaje := 0.0
		if totalValor > 0 {
			porcentaje = criterionValue(criterio, acc) / totalValor * 100
		}
		acumulado += porcentaje

		categoria := "C"
		if acumulado <= 80 {
			categoria = "A"
		} else if acumulado <= 95 {
			categoria = "B"
		}

		row := models.ABCProduct{
			Nombre:              nombre,
			Categoria:           categoria,
			TotalVenta:          round2(acc.totalVenta),
			Cantidad:            acc.cantidad,
			Transacciones:       acc.transacciones,
			Familia:             acc.familia,
			Proveedor:           acc.proveedor,
			Porcentaje:          round2(porcentaje),
			PorcentajeAcumulado: round2(acumulado),
		}
		if m := acc.margen(); m != nil {
			margen := round2(*m)
			row.Margen = &margen
			if acc.totalVenta > 0 {
				pct := round1(*m / acc.totalVenta * 100)
				row.MargenPorcentaje = &pct
			}
		}
		rows = append(rows, row)
	}

	resumen := []models.ABCClassSummary{
		classSummary("A", rows, totalVentas, totalMargen),
		classSummary("B", rows, totalVentas, totalMargen),
		classSummary("C", rows, totalVentas, totalMargen),
	}

	analysis := models.ABCAnalysis{
		Productos:     rows,
		Resumen:       resumen,
		Insights:      buildABCInsights(resumen, rows),
		CriterioUsado: criterio,
		Totales: models.ABCTotals{
			Productos: len(rows),
			Ventas:    round2(totalVentas),
		},
	}
	if totalMargen != 0 {
		margen := round2(totalMargen)
		analysis.Totales.Margen = &margen
	}
	return analysis, nil
}

func classSummary(categoria string, rows []models.ABCProduct, totalVentas, totalMargen float64) models.ABCClassSummary {
	var (
		ventas   float64
		cantidad int
		margen   float64
		count    int
		pctSum   float64
		pctCount int
	)
	for _, p := range rows {
		if p.Categoria != categoria {
			continue
		}
		count++
		ventas += p.TotalVenta
		cantidad += p.Cantidad
		if p.Margen != nil {
			margen += *p.Margen
		}
		if p.MargenPorcentaje != nil {
			pctSum += *p.MargenPorcentaje
			pctCount++
		}
	}

	summary := models.ABCClassSummary{
		Categoria:     categoria,
		Productos:     count,
		TotalVentas:   round2(ventas),
		TotalCantidad: cantidad,
	}
	if margen != 0 {
		m := round2(margen)
		summary.TotalMargen = &m
	}
	if pctCount > 0 {
		avg := round1(pctSum / float64(pctCount))
		summary.MargenPromedio = &avg
	}
	if len(rows) > 0 {
		summary.PorcentajeProductos = round1(float64(count) / float64(len(rows)) * 100)
	}
	if totalVentas > 0 {
		summary.PorcentajeVentas = round1(ventas / totalVentas * 100)
	}
	if totalMargen > 0 {
		pct := round1(margen / totalMargen * 100)
		summary.PorcentajeMargen = &pct
	}
	return summary
}

func buildABCInsights(resumen []models.ABCClassSummary, rows []models.ABCProduct) []models.ABCInsight {
	byClass := map[string]models.ABCClassSummary{}
	for _, r := range resumen {
		byClass[r.Categoria] = r
	}

	insights := []models.ABCInsight{}

	if a, ok := byClass["A"]; ok && a.Productos > 0 {
		accion := "Ver productos A"
		categoria := "A"
		insights = append(insights, models.ABCInsight{
			Tipo:        "success",
			Icono:       "⭐",
			Titulo:      fmt.Sprintf("%d productos generan el %.1f%% de tus ventas", a.Productos, a.PorcentajeVentas),
			Descripcion: "Prioriza stock y visibilidad de estos productos. Son tu core de negocio.",
			Accion:      &accion,
			Categoria:   &categoria,
		})
	}

	if b, ok := byClass["B"]; ok && b.Productos > 0 {
		var candidatos []string
		for _, p := range rows {
			if p.Categoria != "B" {
				continue
			}
			nombre := p.Nombre
			if len(nombre) > 20 {
				nombre = nombre[:20]
			}
			candidatos = append(candidatos, nombre)
			if len(candidatos) == 3 {
				break
			}
		}
		accion := "Ver productos B"
		categoria := "B"
		insights = append(insights, models.ABCInsight{
			Tipo:        "info",
			Icono:       "📈",
			Titulo:      fmt.Sprintf("%d productos podrían subir a Categoría A", b.Productos),
			Descripcion: fmt.Sprintf("Candidatos: %s. Considera promociones o mejor ubicación.", strings.Join(candidatos, ", ")),
			Accion:      &accion,
			Categoria:   &categoria,
		})
	}

	if c, ok := byClass["C"]; ok && c.Productos > 0 {
		accion := "Ver productos C"
		categoria := "C"
		insights = append(insights, models.ABCInsight{
			Tipo:        "warning",
			Icono:       "📦",
			Titulo:      fmt.Sprintf("%d productos (%.1f%%) generan solo %.1f%% de ventas", c.Productos, c.PorcentajeProductos, c.PorcentajeVentas),
			Descripcion: "Evalúa reducir inventario, descuentos para liquidar, o descontinuar productos de bajo margen.",
			Accion:      &accion,
			Categoria:   &categoria,
		})
	}

	if a, ok := byClass["A"]; ok && a.MargenPromedio != nil {
		mejor := resumen[0]
		for _, r := range resumen[1:] {
			if r.MargenPromedio != nil && (mejor.MargenPromedio == nil || *r.MargenPromedio > *mejor.MargenPromedio) {
				mejor = r
			}
		}
		if mejor.MargenPromedio != nil {
			insights = append(insights, models.ABCInsight{
				Tipo:        "info",
				Icono:       "💰",
				Titulo:      fmt.Sprintf("Categoría %s tiene el mejor margen (%.1f%%)", mejor.Categoria, *mejor.MargenPromedio),
				Descripcion: "Considera estrategias diferenciadas de pricing por categoría.",
			})
		}
	}

	return insights
}

// CategoryChanges compares the current classification against the same
// analysis shifted 30 days back and reports products that moved class.
func (s *ABCService) CategoryChanges(ctx context.Context, f models.FilterSet) ([]models.ABCCategoryChange, error) {
	actual, err := s.Analyze(ctx, f, models.ABCCriterioVentas)
	if err != nil {
		return nil, err
	}

	anterior, err := s.Analyze(ctx, shiftWindowBack(f, 30), models.ABCCriterioVentas)
	if err != nil {
		return nil, err
	}

	previas := map[string]string{}
	for _, p := range anterior.Productos {
		previas[p.Nombre] = p.Categoria
	}

	orden := map[string]int{"A": 1, "B": 2, "C": 3}
	cambios := []models.ABCCategoryChange{}
	for _, p := range actual.Productos {
		previa, ok := previas[p.Nombre]
		if !ok || previa == p.Categoria {
			continue
		}
		mejora := orden[p.Categoria] < orden[previa]
		icono := "⬇️"
		if mejora {
			icono = "⬆️"
		}
		cambios = append(cambios, models.ABCCategoryChange{
			Nombre:            p.Nombre,
			CategoriaAnterior: previa,
			CategoriaActual:   p.Categoria,
			Mejora:            mejora,
			Icono:             icono,
			TotalVenta:        p.TotalVenta,
		})
	}

	sort.SliceStable(cambios, func(i, j int) bool {
		if cambios[i].Mejora != cambios[j].Mejora {
			return cambios[i].Mejora
		}
		return cambios[i].TotalVenta > cambios[j].TotalVenta
	})
	return cambios, nil
}

// shiftWindowBack moves the date range of a filter set n days earlier,
// dropping every other dimension.
func shiftWindowBack(f models.FilterSet, days int) models.FilterSet {
	shifted := models.FilterSet{}
	if f.FechaInicio != nil {
		if t, err := time.Parse("2006-01-02", *f.FechaInicio); err == nil {
			s := t.AddDate(0, 0, -days).Format("2006-01-02")
			shifted.FechaInicio = &s
		}
	}
	if f.FechaFin != nil {
		if t, err := time.Parse("2006-01-02", *f.FechaFin); err == nil {
			s := t.AddDate(0, 0, -days).Format("2006-01-02")
			shifted.FechaFin = &s
		}
	}
	return shifted
}

func emptyABCAnalysis() models.ABCAnalysis {
	return models.ABCAnalysis{
		Productos: []models.ABCProduct{},
		Resumen: []models.ABCClassSummary{
			{Categoria: "A"},
			{Categoria: "B"},
			{Categoria: "C"},
		},
		Insights:      []models.ABCInsight{},
		CriterioUsado: models.ABCCriterioVentas,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
