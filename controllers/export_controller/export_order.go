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

// ExportOrderCSV godoc
// @Summary Download a provider order sheet as CSV
// @Description Streams the order sheet for one provider as an RFC 4180 file
// @Tags Export
// @Produce text/csv
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /export/orden/{proveedor}/csv [get]
func ExportOrderCSV(c *gin.Context) {
	proveedor := c.Param("proveedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	order, err := services.GetPurchasingService().ProviderOrderSheet(ctx, proveedor, f)
	if err != nil {
		log.Printf("[export.orden-csv] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build order sheet"))
		return
	}

	content, err := services.GetExportService().OrderCSV(order)
	if err != nil {
		log.Printf("[export.orden-csv] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
		return
	}

	filename := utils.ExportFilename("orden_"+proveedor, "csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ExportOrderExcel godoc
// @Summary Download a provider order sheet as Excel
// @Description Streams the order sheet for one provider as a workbook
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /export/orden/{proveedor}/excel [get]
func ExportOrderExcel(c *gin.Context) {
	proveedor := c.Param("proveedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	order, err := services.GetPurchasingService().ProviderOrderSheet(ctx, proveedor, f)
	if err != nil {
		log.Printf("[export.orden-excel] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build order sheet"))
		return
	}

	content, err := services.GetExportService().OrderExcel(order)
	if err != nil {
		log.Printf("[export.orden-excel] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build workbook"))
		return
	}

	filename := utils.ExportFilename("orden_"+proveedor, "xlsx")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// ExportOrderPDF godoc
// @Summary Download a provider order sheet as PDF
// @Description Streams the order sheet for one provider as a PDF
// @Tags Export
// @Produce application/pdf
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /export/orden/{proveedor}/pdf [get]
func ExportOrderPDF(c *gin.Context) {
	proveedor := c.Param("proveedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	order, err := services.GetPurchasingService().ProviderOrderSheet(ctx, proveedor, f)
	if err != nil {
		log.Printf("[export.orden-pdf] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build order sheet"))
		return
	}

	content := services.GetExportService().OrderPDF(order)
	if len(content) == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build PDF"))
		return
	}

	filename := utils.ExportFilename("orden_"+proveedor, "pdf")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", content)
}
