package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetFilters godoc
// @Summary Get the active filter set
// @Description Returns the user's current dashboard filters
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.FilterSet}
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros [get]
func GetFilters(c *gin.Context) {
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

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters retrieved successfully", set))
}
