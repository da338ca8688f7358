package dashboard_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetTopSellers godoc
// @Summary Get the top sellers
// @Description Returns the best performing sellers by revenue for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of sellers" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.TopSeller}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/top-vendedores [get]
func GetTopSellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	params := f.Params()
	params["limit"] = limit

	vendedores, err := cache.Fetch(ctx, cache.Queries, "dashboard.top_vendedores", params, func(ctx context.Context) ([]models.TopSeller, error) {
		return services.GetSalesService().TopSellers(ctx, f, limit)
	})
	if err != nil {
		log.Printf("[dashboard.top-vendedores] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top sellers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top sellers retrieved successfully", vendedores))
}
