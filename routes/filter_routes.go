package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/controllers/filter_controller"
)

func SetupFilterRoutes(rg *gin.RouterGroup) {
	filtros := rg.Group("/filtros")

	// ════════════════════════════════════════════════════════════
	// Active Filter Set
	// ════════════════════════════════════════════════════════════
	filtros.GET("", filter_controller.GetFilters)
	filtros.PUT("", filter_controller.UpdateFilters)
	filtros.PUT("/:campo", filter_controller.UpdateFilterField)
	filtros.POST("/reset", filter_controller.ResetFilters)
	filtros.GET("/params", filter_controller.GetFilterParams)
	filtros.GET("/opciones", filter_controller.GetFilterOptions)

	// ════════════════════════════════════════════════════════════
	// Saved Filter Sets
	// ════════════════════════════════════════════════════════════
	filtros.GET("/guardados", filter_controller.GetSavedFilters)
	filtros.POST("/guardados", filter_controller.SaveFilter)
	filtros.DELETE("/guardados/:id", filter_controller.DeleteSavedFilter)
	filtros.POST("/guardados/:id/aplicar", filter_controller.ApplySavedFilter)
}
