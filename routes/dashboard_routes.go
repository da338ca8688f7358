package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/dashboard_controller"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/ventas", dashboard_controller.GetSales)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/metricas", dashboard_controller.GetMetrics)
		dashboard.GET("/alertas", dashboard_controller.GetAlerts)
		dashboard.GET("/top-productos", dashboard_controller.GetTopProducts)
		dashboard.GET("/top-vendedores", dashboard_controller.GetTopSellers)
		dashboard.GET("/ventas-por-dia", dashboard_controller.GetSalesByDay)
		dashboard.GET("/ventas-por-vendedor", dashboard_controller.GetSalesBySeller)
		dashboard.GET("/ventas-por-familia", dashboard_controller.GetSalesByFamily)
		dashboard.GET("/ventas-por-metodo", dashboard_controller.GetSalesByMethod)
		dashboard.GET("/productos-por-cantidad", dashboard_controller.GetTopProductsByQuantity)
		dashboard.GET("/insights", dashboard_controller.GetInsights)
		dashboard.GET("/kpis", dashboard_controller.GetExecutiveKPIs)
	}
}
