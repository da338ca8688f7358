package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/inventory_controller"
)

func SetupInventoryRoutes(rg *gin.RouterGroup) {
	inventario := rg.Group("/inventario")
	{
		inventario.GET("", inventory_controller.GetInventory)
		inventario.GET("/resumen", inventory_controller.GetInventorySummary)
		inventario.GET("/alertas", inventory_controller.GetInventoryAlerts)
		inventario.GET("/valor-por-familia", inventory_controller.GetValueByFamily)
		inventario.GET("/valor-por-proveedor", inventory_controller.GetValueByProvider)
		inventario.GET("/producto/:nombre", inventory_controller.GetProductDetail)
	}
}
