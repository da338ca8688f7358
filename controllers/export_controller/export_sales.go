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

// ExportSalesCSV godoc
// @Summary Download the filtered sales as CSV
// @Description Streams an RFC 4180 file of the filtered sale rows. An empty result still yields a header-only file.
// @Tags Export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /export/ventas/csv [get]
func ExportSalesCSV(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	sales, err := services.GetSalesService().FetchSales(ctx, f)
	if err != nil {
		log.Printf("[export.ventas-csv] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sales"))
		return
	}

	content, err := services.GetExportService().SalesCSV(sales)
	if err != nil {
		log.Printf("[export.ventas-csv] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build CSV"))
		return
	}

	filename := utils.ExportFilename("ventas", "csv")
	log.Printf("[export.ventas-csv] %d rows as %s", len(sales), filename)

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", content)
}

// ExportSalesExcel godoc
// @Summary Download the filtered sales as Excel
// @Description Streams a two-sheet workbook: the raw data plus a totals summary
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /export/ventas/excel [get]
func ExportSalesExcel(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	sales, err := services.GetSalesService().FetchSales(ctx, f)
	if err != nil {
		log.Printf("[export.ventas-excel] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sales"))
		return
	}

	content, err := services.GetExportService().SalesExcel(sales)
	if err != nil {
		log.Printf("[export.ventas-excel] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build workbook"))
		return
	}

	filename := utils.ExportFilename("ventas", "xlsx")
	log.Printf("[export.ventas-excel] %d rows as %s", len(sales), filename)

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
