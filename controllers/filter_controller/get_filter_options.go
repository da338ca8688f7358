package filter_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetFilterOptions godoc
// @Summary Get the filter widget options
// @Description Returns every selectable value plus the numeric and date bounds of the data
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.FilterOptions}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/opciones [get]
func GetFilterOptions(c *gin.Context) {
	// process-local fast path first
	if options, ok := cache.GetOptions(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter options retrieved successfully", options))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	options, err := cache.Fetch(ctx, cache.Queries, "filters.opciones", nil, func(ctx context.Context) (models.FilterOptions, error) {
		return services.GetSalesService().FilterOptions(ctx)
	})
	if err != nil {
		log.Printf("[filters.opciones] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter options"))
		return
	}

	cache.SetOptions(options)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter options retrieved successfully", options))
}
