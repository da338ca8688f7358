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

// GetProviderScores godoc
// @Summary Get the provider scores
// @Description Rates each provider 0-100 from sales volume, margin and units moved
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ProviderScore}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /proveedores/scores [get]
func GetProviderScores(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	scores, err := cache.Fetch(ctx, cache.Queries, "providers.scores", f.Params(), func(ctx context.Context) ([]models.ProviderScore, error) {
		return services.GetProviderService().Scores(ctx, f)
	})
	if err != nil {
		log.Printf("[proveedores.scores] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch provider scores"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider scores retrieved successfully", scores))
}

// GetPriceGaps godoc
// @Summary Get the provider price gaps
// @Description Flags products bought from several providers where the costs differ by more than 10%
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ProviderPriceGap}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /proveedores/diferencias-precio [get]
func GetPriceGaps(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	gaps, err := cache.Fetch(ctx, cache.Queries, "providers.price_gaps", f.Params(), func(ctx context.Context) ([]models.ProviderPriceGap, error) {
		return services.GetProviderService().PriceGaps(ctx, f)
	})
	if err != nil {
		log.Printf("[proveedores.diferencias-precio] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch price gaps"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price gaps retrieved successfully", gaps))
}
