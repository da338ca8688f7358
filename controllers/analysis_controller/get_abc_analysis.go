package analysis_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetABCAnalysis godoc
// @Summary Get the ABC classification
// @Description Classifies products by cumulative share of the chosen criterion (ventas, cantidad, margen, frecuencia) and returns per-class summaries and insights
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Param criterio query string false "Classification criterion" Enums(ventas, cantidad, margen, frecuencia) default(ventas)
// @Success 200 {object} models.ApiResponse{data=models.ABCAnalysis}
// @Failure 400 {object} models.ApiResponse "Unknown criterion"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /analisis/abc [get]
func GetABCAnalysis(c *gin.Context) {
	criterio := c.DefaultQuery("criterio", models.ABCCriterioVentas)
	switch criterio {
	case models.ABCCriterioVentas, models.ABCCriterioCantidad, models.ABCCriterioMargen, models.ABCCriterioFrecuencia:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown criterion"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	params := f.Params()
	params["criterio"] = criterio

	analysis, err := cache.Fetch(ctx, cache.Queries, "abc.analysis", params, func(ctx context.Context) (models.ABCAnalysis, error) {
		return services.GetABCService().Analyze(ctx, f, criterio)
	})
	if err != nil {
		log.Printf("[analisis.abc] ERROR criterio=%s err=%v", criterio, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch ABC analysis"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "ABC analysis retrieved successfully", analysis))
}

// GetABCCategoryChanges godoc
// @Summary Get ABC category movements
// @Description Compares the current classification against the 30-days-earlier window and lists the products that changed class, improvements first
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ABCCategoryChange}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /analisis/abc/cambios [get]
func GetABCCategoryChanges(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	cambios, err := cache.Fetch(ctx, cache.Queries, "abc.cambios", f.Params(), func(ctx context.Context) ([]models.ABCCategoryChange, error) {
		return services.GetABCService().CategoryChanges(ctx, f)
	})
	if err != nil {
		log.Printf("[analisis.abc-cambios] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category changes"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category changes retrieved successfully", cambios))
}
