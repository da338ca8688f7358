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

// GetMarginAnalysis godoc
// @Summary Get the margin analysis
// @Description Returns margin metrics, the price-margin scatter, the best and worst products and the per-family breakdown, over the cost-bearing rows only
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.MarginAnalysis}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /analisis/margenes [get]
func GetMarginAnalysis(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	analysis, err := cache.Fetch(ctx, cache.Queries, "margins.analysis", f.Params(), func(ctx context.Context) (models.MarginAnalysis, error) {
		return services.GetMarginService().Analyze(ctx, f)
	})
	if err != nil {
		log.Printf("[analisis.margenes] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch margin analysis"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Margin analysis retrieved successfully", analysis))
}
