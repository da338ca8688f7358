package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/purchasing_controller"
)

func SetupPurchasingRoutes(rg *gin.RouterGroup) {
	compras := rg.Group("/compras")

	// ════════════════════════════════════════════════════════════
	// Reports
	// ════════════════════════════════════════════════════════════
	compras.GET("/sugerencias", purchasing_controller.GetSuggestions)
	compras.GET("/resumen", purchasing_controller.GetSummary)
	compras.GET("/agotados", purchasing_controller.GetOutOfStock)
	compras.GET("/puntos-reorden", purchasing_controller.GetReorderPoints)
	compras.GET("/proveedores", purchasing_controller.GetProviderSummaries)
	compras.GET("/alertas-stock", purchasing_controller.GetStockAlerts)

	// ════════════════════════════════════════════════════════════
	// Orders
	// ════════════════════════════════════════════════════════════
	compras.GET("/ordenes", purchasing_controller.GetOrderHistory)
	compras.POST("/ordenes", purchasing_controller.GenerateOrder)
	compras.GET("/orden/:proveedor", purchasing_controller.GetProviderOrder)
	compras.POST("/orden/:proveedor/email", purchasing_controller.EmailProviderOrder)
}
