package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/seller_controller"
)

func SetupSellerRoutes(rg *gin.RouterGroup) {
	vendedores := rg.Group("/vendedores")
	{
		vendedores.GET("/ranking", seller_controller.GetRanking)
		vendedores.GET("/:vendedor", seller_controller.GetSellerDetail)
	}
}
