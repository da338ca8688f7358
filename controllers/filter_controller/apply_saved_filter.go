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

// ApplySavedFilter godoc
// @Summary Apply a saved filter
// @Description Loads a named filter set into the active filter store
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Saved filter ID"
// @Success 200 {object} models.ApiResponse{data=models.FilterSet}
// @Failure 400 {object} models.ApiResponse "Invalid filter ID"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "Filter not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/guardados/{id}/aplicar [post]
func ApplySavedFilter(c *gin.Context) {
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

	set, err := services.GetSavedFilterService().Load(ctx, uid, filterID)
	if errors.Is(err, services.ErrSavedFilterNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Filter not found"))
		return
	}
	if err != nil {
		log.Printf("[filters.aplicar] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load filter"))
		return
	}

	if err := services.GetFilterStore().Set(ctx, userID, set); err != nil {
		log.Printf("[filters.aplicar] failed to activate filter: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to apply filter"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter applied successfully", set))
}
