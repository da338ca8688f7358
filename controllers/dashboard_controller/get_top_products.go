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

// GetTopProducts godoc
// @Summary Get the top products
// @Description Returns the best selling products by units for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/top-productos [get]
func GetTopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	params := f.Params()
	params["limit"] = limit

	productos, err := cache.Fetch(ctx, cache.Queries, "dashboard.top_productos", params, func(ctx context.Context) ([]models.TopProduct, error) {
		return services.GetSalesService().TopProducts(ctx, f, limit)
	})
	if err != nil {
		log.Printf("[dashboard.top-productos] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", productos))
}
