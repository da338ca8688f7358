package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetFilterParams godoc
// @Summary Get the projected query parameters
// @Description Returns the active filter set projected into query parameters, nil and empty dimensions omitted
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/params [get]
func GetFilterParams(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	set, err := services.GetFilterStore().Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter params retrieved successfully", set.Params()))
}
