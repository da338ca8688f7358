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

// GetAlerts godoc
// @Summary Get the dashboard alerts
// @Description Returns negative-margin, low-margin and underperforming-seller alerts for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Alert}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/alertas [get]
func GetAlerts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	alerts, err := cache.Fetch(ctx, cache.Queries, "dashboard.alerts", f.Params(), func(ctx context.Context) ([]models.Alert, error) {
		return services.GetSalesService().Alerts(ctx, f)
	})
	if err != nil {
		log.Printf("[dashboard.alertas] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch alerts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alerts retrieved successfully", alerts))
}
