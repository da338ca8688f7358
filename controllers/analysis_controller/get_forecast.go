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

// GetForecast godoc
// @Summary Get the sales forecast
// @Description Returns the 7-day moving average history, the 7-day projection with a ±20% band and the weekday averages
// @Tags Analysis
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.Forecast}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /analisis/predicciones [get]
func GetForecast(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	forecast, err := cache.Fetch(ctx, cache.Queries, "forecast", f.Params(), func(ctx context.Context) (models.Forecast, error) {
		return services.GetForecastService().Forecast(ctx, f)
	})
	if err != nil {
		log.Printf("[analisis.predicciones] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch forecast"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Forecast retrieved successfully", forecast))
}
