package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/analysis_controller"
)

func SetupAnalysisRoutes(rg *gin.RouterGroup) {
	analisis := rg.Group("/analisis")
	{
		analisis.GET("/margenes", analysis_controller.GetMarginAnalysis)
		analisis.GET("/abc", analysis_controller.GetABCAnalysis)
		analisis.GET("/abc/cambios", analysis_controller.GetABCCategoryChanges)
		analisis.GET("/predicciones", analysis_controller.GetForecast)
	}
}
