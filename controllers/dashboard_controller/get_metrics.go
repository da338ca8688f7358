package dashboard_controller

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

// GetMetrics godoc
// @Summary Get the headline metrics
// @Description Returns total sales, record count, average price and margins for the active filters, with deltas against the previous 30-day window
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardMetrics}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/metricas [get]
func GetMetrics(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	metrics, err := cache.Fetch(ctx, cache.Queries, "dashboard.metrics", f.Params(), func(ctx context.Context) (models.DashboardMetrics, error) {
		return services.GetSalesService().Metrics(ctx, f)
	})
	if err != nil {
		log.Printf("[dashboard.metricas] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch metrics"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Metrics retrieved successfully", metrics))
}
