package export_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
	"github.com/jupabego97/reportes-react-sub000/utils"
)

// ExportDashboardPDF godoc
// @Summary Download the dashboard summary report as PDF
// @Description Streams a one-page report: metrics, alerts, top products and sellers, revenue per family
// @Tags Export
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /export/reporte/pdf [get]
func ExportDashboardPDF(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	sales := services.GetSalesService()

	metricas, err := sales.Metrics(ctx, f)
	if err != nil {
		log.Printf("[export.reporte-pdf] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch metrics"))
		return
	}

	data := services.DashboardReportData{Metrics: metricas}

	// the remaining sections are decoration, a failed one just drops out
	if alertas, err := sales.Alerts(ctx, f); err == nil {
		data.Alerts = alertas
	} else {
		log.Printf("[export.reporte-pdf] alerts skipped err=%v", err)
	}
	if productos, err := sales.TopProducts(ctx, f, 10); err == nil {
		data.TopProductos = productos
	} else {
		log.Printf("[export.reporte-pdf] top products skipped err=%v", err)
	}
	if vendedores, err := sales.TopSellers(ctx, f, 10); err == nil {
		data.TopVendedores = vendedores
	} else {
		log.Printf("[export.reporte-pdf] top sellers skipped err=%v", err)
	}
	if familias, err := sales.SalesByFamily(ctx, f); err == nil {
		data.Familias = familias
	} else {
		log.Printf("[export.reporte-pdf] families skipped err=%v", err)
	}

	content := services.GetExportService().DashboardPDF(data)
	if len(content) == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build PDF"))
		return
	}

	filename := utils.ExportFilename("reporte", "pdf")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", content)
}
