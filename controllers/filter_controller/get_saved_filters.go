package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetSavedFilters godoc
// @Summary List saved filters
// @Description Returns the user's named filter sets, newest first
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.SavedFilter}
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/guardados [get]
func GetSavedFilters(c *gin.Context) {
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

	ctx, cancel := config.WithTimeout()
	defer cancel()

	filters, err := services.GetSavedFilterService().List(ctx, uid)
	if err != nil {
		log.Printf("[filters.guardados] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch saved filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Saved filters retrieved successfully", filters))
}
