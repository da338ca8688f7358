package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetInsights godoc
// @Summary Get generated insights
// @Description Returns automatically generated observations about recent sales. Each insight is computed independently.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Insight}
// @Router /dashboard/insights [get]
func GetInsights(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	insights := services.GetInsightsService().Insights(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Insights retrieved successfully", insights))
}

// GetExecutiveKPIs godoc
// @Summary Get the executive KPIs
// @Description Returns today, yesterday and month-to-date totals
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.ExecutiveKPIs}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/kpis [get]
func GetExecutiveKPIs(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	kpis, err := services.GetInsightsService().ExecutiveKPIs(ctx)
	if err != nil {
		log.Printf("[dashboard.kpis] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch KPIs"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "KPIs retrieved successfully", kpis))
}
