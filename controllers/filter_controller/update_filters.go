package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// UpdateFilters godoc
// @Summary Replace the active filter set
// @Description Stores a whole filter set. Writes are last-write-wins.
// @Tags Filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filters body models.FilterSet true "Filter set"
// @Success 200 {object} models.ApiResponse{data=models.FilterSet}
// @Failure 400 {object} models.ApiResponse "Invalid filter set"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros [put]
func UpdateFilters(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var set models.FilterSet
	if err := c.ShouldBindJSON(&set); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter set"))
		return
	}

	if err := services.GetFilterStore().Set(c.Request.Context(), userID, set); err != nil {
		log.Printf("[filters.update] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters updated successfully", set))
}
