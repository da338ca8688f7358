package services

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/xuri/excelize/v2"

	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/utils"
)

// ExportService renders the filtered sales and the purchase orders as
// CSV, Excel and PDF downloads.
type ExportService struct{}

var exportService *ExportService

func GetExportService() *ExportService {
	if exportService == nil {
		exportService = &ExportService{}
	}
	return exportService
}

var salesExportHeaders = []string{
	"nombre", "precio", "cantidad", "total_venta", "metodo", "vendedor",
	"fecha_venta", "familia", "proveedor", "margen", "margen_porcentaje",
}

func salesExportRows(sales []models.Sale) [][]string {
	rows := make([][]string, 0, len(sales))
	for _, v := range sales {
		metodo, vendedor, familia, proveedor := "", "", "", ""
		if v.Metodo != nil {
			metodo = *v.Metodo
		}
		if v.Vendedor != nil {
			vendedor = *v.Vendedor
		}
		if v.Familia != nil {
			familia = *v.Familia
		}
		if v.ProveedorModa != nil {
			proveedor = *v.ProveedorModa
		}
		margen, margenPct := "", ""
		if v.Margen != nil {
			margen = utils.FormatMoney(*v.Margen)
		}
		if v.MargenPorcentaje != nil {
			margenPct = fmt.Sprintf("%.1f", *v.MargenPorcentaje)
		}
		rows = append(rows, []string{
			v.Nombre,
			utils.FormatMoney(v.Precio),
			strconv.Itoa(v.Cantidad),
			utils.FormatMoney(v.TotalVenta),
			metodo,
			vendedor,
			v.FechaVenta.String(),
			familia,
			proveedor,
			margen,
			margenPct,
		})
	}
	return rows
}

// SalesCSV renders the filtered sales as a CSV file.
func (s *ExportService) SalesCSV(sales []models.Sale) ([]byte, error) {
	return utils.BuildCSV(salesExportHeaders, salesExportRows(sales))
}

// SalesExcel renders the filtered sales as a two-sheet workbook:
// the raw data plus a totals summary.
func (s *ExportService) SalesExcel(sales []models.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const dataSheet = "Ventas"
	f.SetSheetName("Sheet1", dataSheet)

	for col, header := range salesExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(dataSheet, cell, header)
	}
	for i, v := range sales {
		row := i + 2
		setCell := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(dataSheet, cell, value)
		}
		setCell(1, v.Nombre)
		setCell(2, v.Precio)
		setCell(3, v.Cantidad)
		setCell(4, v.TotalVenta)
		if v.Metodo != nil {
			setCell(5, *v.Metodo)
		}
		if v.Vendedor != nil {
			setCell(6, *v.Vendedor)
		}
		setCell(7, v.FechaVenta.String())
		if v.Familia != nil {
			setCell(8, *v.Familia)
		}
		if v.ProveedorModa != nil {
			setCell(9, *v.ProveedorModa)
		}
		if v.Margen != nil {
			setCell(10, *v.Margen)
		}
		if v.MargenPorcentaje != nil {
			setCell(11, *v.MargenPorcentaje)
		}
	}

	var totalVentas, totalMargen float64
	var totalUnidades int
	for _, v := range sales {
		totalVentas += v.TotalVenta
		totalUnidades += v.Cantidad
		if v.TotalMargen != nil {
			totalMargen += *v.TotalMargen
		}
	}

	const summarySheet = "Resumen"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	f.SetCellValue(summarySheet, "A1", "Registros")
	f.SetCellValue(summarySheet, "B1", len(sales))
	f.SetCellValue(summarySheet, "A2", "Total ventas")
	f.SetCellValue(summarySheet, "B2", round2(totalVentas))
	f.SetCellValue(summarySheet, "A3", "Unidades")
	f.SetCellValue(summarySheet, "B3", totalUnidades)
	f.SetCellValue(summarySheet, "A4", "Margen total")
	f.SetCellValue(summarySheet, "B4", round2(totalMargen))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DashboardReportData bundles the sections the PDF report shows.
type DashboardReportData struct {
	Metrics       models.DashboardMetrics
	Alerts        []models.Alert
	TopProductos  []models.TopProduct
	TopVendedores []models.TopSeller
	Familias      []models.FamilyTotal
}

// DashboardPDF renders the dashboard summary report: headline metrics,
// active alerts, top products and sellers, and revenue per family.
func (s *ExportService) DashboardPDF(data DashboardReportData) []byte {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	sectionTitle := func(title string) {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(title, props.Text{
					Size:  13,
					Style: consts.Bold,
					Color: darkGray,
				})
			})
		})
	}
	labelValue := func(label, value string) {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(label, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(6, func() {
				m.Text(value, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("REPORTE DE VENTAS", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generado: %s", time.Now().Format("2006-01-02")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	sectionTitle("Métricas")
	labelValue("Total ventas", fmt.Sprintf("$%.2f", data.Metrics.TotalVentas))
	labelValue("Registros", strconv.Itoa(data.Metrics.TotalRegistros))
	labelValue("Precio promedio", fmt.Sprintf("$%.2f", data.Metrics.PrecioPromedio))
	labelValue("Margen total", fmt.Sprintf("$%.2f", data.Metrics.MargenTotal))
	if data.Metrics.DeltaVentas != nil {
		labelValue("Variación vs periodo anterior", *data.Metrics.DeltaVentas)
	}
	m.Row(6, func() {})

	if len(data.Alerts) > 0 {
		sectionTitle("Alertas")
		for _, alerta := range data.Alerts {
			m.Row(6, func() {
				m.Col(12, func() {
					m.Text(fmt.Sprintf("%s %s: %s", alerta.Icono, alerta.Titulo, alerta.Detalle), props.Text{
						Size:  9,
						Color: darkGray,
					})
				})
			})
		}
		m.Row(6, func() {})
	}

	if len(data.TopProductos) > 0 {
		sectionTitle("Top productos")
		for _, p := range data.TopProductos {
			labelValue(p.Nombre, fmt.Sprintf("$%.2f", p.TotalVenta))
		}
		m.Row(6, func() {})
	}

	if len(data.TopVendedores) > 0 {
		sectionTitle("Top vendedores")
		for _, v := range data.TopVendedores {
			labelValue(v.Vendedor, fmt.Sprintf("$%.2f", v.TotalVenta))
		}
		m.Row(6, func() {})
	}

	if len(data.Familias) > 0 {
		sectionTitle("Ventas por familia")
		for _, fam := range data.Familias {
			labelValue(fam.Familia, fmt.Sprintf("$%.2f", fam.TotalVenta))
		}
	}

	buf, err := m.Output()
	if err != nil {
		log.Printf("[export.dashboard-pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil).Bytes()
	}
	return buf.Bytes()
}

// OrderCSV renders one provider order sheet as CSV.
func (s *ExportService) OrderCSV(order models.ProviderOrder) ([]byte, error) {
	headers := []string{"nombre", "familia", "stock_actual", "dias_stock", "cantidad", "precio_unitario", "subtotal", "prioridad"}
	rows := make([][]string, 0, len(order.Items))
	for _, item := range order.Items {
		familia, precio := "", ""
		if item.Familia != nil {
			familia = *item.Familia
		}
		if item.PrecioUnitario != nil {
			precio = utils.FormatMoney(*item.PrecioUnitario)
		}
		rows = append(rows, []string{
			item.Nombre,
			familia,
			strconv.Itoa(item.StockActual),
			fmt.Sprintf("%.1f", item.DiasStock),
			strconv.Itoa(item.Cantidad),
			precio,
			utils.FormatMoney(item.Subtotal),
			item.Prioridad,
		})
	}
	return utils.BuildCSV(headers, rows)
}

// OrderExcel renders one provider order sheet as a workbook.
func (s *ExportService) OrderExcel(order models.ProviderOrder) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orden"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"nombre", "familia", "stock_actual", "dias_stock", "cantidad", "precio_unitario", "subtotal", "prioridad"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, item := range order.Items {
		row := i + 2
		setCell := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(sheet, cell, value)
		}
		setCell(1, item.Nombre)
		if item.Familia != nil {
			setCell(2, *item.Familia)
		}
		setCell(3, item.StockActual)
		setCell(4, item.DiasStock)
		setCell(5, item.Cantidad)
		if item.PrecioUnitario != nil {
			setCell(6, *item.PrecioUnitario)
		}
		setCell(7, item.Subtotal)
		setCell(8, item.Prioridad)
	}

	totalRow := len(order.Items) + 3
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	f.SetCellValue(sheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(7, totalRow)
	f.SetCellValue(sheet, cell, order.InversionTotal)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OrderPDF renders one provider order sheet as a PDF.
func (s *ExportService) OrderPDF(order models.ProviderOrder) []byte {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("ORDEN DE COMPRA", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(6, func() {
			m.Text(order.Proveedor, props.Text{
				Size:  16,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Fecha: %s", order.FechaGeneracion), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(5, func() {
			m.Text("Producto", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(2, func() {
			m.Text("Stock", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text("Cantidad", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(3, func() {
			m.Text("Subtotal", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, item := range order.Items {
		m.Row(6, func() {
			m.Col(5, func() {
				m.Text(item.Nombre, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(2, func() {
				m.Text(strconv.Itoa(item.StockActual), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(strconv.Itoa(item.Cantidad), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Subtotal), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(7, func() {})
		m.Col(2, func() {
			m.Text("Unidades", props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
		m.Col(3, func() {
			m.Text(strconv.Itoa(order.TotalUnidades), props.Text{
				Size:  9,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {
		m.Col(7, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(3, func() {
			m.Text(fmt.Sprintf("$%.2f", order.InversionTotal), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[export.order-pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil).Bytes()
	}
	return buf.Bytes()
}
