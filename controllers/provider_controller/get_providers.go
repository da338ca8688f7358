package provider_controller

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

// GetProviders godoc
// @Summary List providers
// @Description Returns the distinct provider names, sorted
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /proveedores [get]
func GetProviders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	proveedores, err := cache.Fetch(ctx, cache.Queries, "providers.list", nil, func(ctx context.Context) ([]string, error) {
		return services.GetProviderService().List(ctx)
	})
	if err != nil {
		log.Printf("[proveedores.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch providers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Providers retrieved successfully", proveedores))
}

// GetProviderSummaries godoc
// @Summary Get the provider summaries
// @Description Returns sales aggregates per provider with stock alert counts
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ProviderSummary}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /proveedores/resumen [get]
func GetProviderSummaries(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	resumen, err := cache.Fetch(ctx, cache.Queries, "providers.resumen", f.Params(), func(ctx context.Context) ([]models.ProviderSummary, error) {
		return services.GetProviderService().Summaries(ctx, f)
	})
	if err != nil {
		log.Printf("[proveedores.resumen] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch provider summaries"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider summaries retrieved successfully", resumen))
}
