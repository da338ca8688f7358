package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/provider_controller"
)

func SetupProviderRoutes(rg *gin.RouterGroup) {
	proveedores := rg.Group("/proveedores")
	{
		proveedores.GET("", provider_controller.GetProviders)
		proveedores.GET("/resumen", provider_controller.GetProviderSummaries)
		proveedores.GET("/scores", provider_controller.GetProviderScores)
		proveedores.GET("/diferencias-precio", provider_controller.GetPriceGaps)
		proveedores.GET("/:proveedor", provider_controller.GetProviderDetail)
		proveedores.GET("/:proveedor/stock", provider_controller.GetProviderStock)
	}
}
