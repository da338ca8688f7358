package filter_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// DeleteSavedFilter godoc
// @Summary Delete a saved filter
// @Description Removes one named filter set
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved filter ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid filter ID"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "Filter not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/guardados/{id} [delete]
func DeleteSavedFilter(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	filterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	err = services.GetSavedFilterService().Delete(ctx, uid, filterID)
	if errors.Is(err, services.ErrSavedFilterNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Filter not found"))
		return
	}
	if err != nil {
		log.Printf("[filters.eliminar] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete filter"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter deleted successfully", nil))
}
