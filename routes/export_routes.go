package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/export_controller"
)

func SetupExportRoutes(rg *gin.RouterGroup) {
	export := rg.Group("/export")
	{
		export.GET("/ventas/csv", export_controller.ExportSalesCSV)
		export.GET("/ventas/excel", export_controller.ExportSalesExcel)
		export.GET("/reporte/pdf", export_controller.ExportDashboardPDF)
		export.GET("/orden/:proveedor/csv", export_controller.ExportOrderCSV)
		export.GET("/orden/:proveedor/excel", export_controller.ExportOrderExcel)
		export.GET("/orden/:proveedor/pdf", export_controller.ExportOrderPDF)
	}
}
