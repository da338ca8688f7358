package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// ResetFilters godoc
// @Summary Reset the active filter set
// @Description Restores the defaults: every dimension cleared
// @Tags Filters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.FilterSet}
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/reset [post]
func ResetFilters(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	set, err := services.GetFilterStore().Reset(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[filters.reset] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reset filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters reset successfully", set))
}
