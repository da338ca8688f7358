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

type saveFilterRequest struct {
	Name     string           `json:"name" binding:"required,min=1,max=100"`
	Criteria models.FilterSet `json:"criteria"`
}

// SaveFilter godoc
// @Summary Save the filter set under a name
// @Description Stores a named filter set for reuse. Omitting the criteria saves the currently active set. Saving an existing name replaces it.
// @Tags Filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body saveFilterRequest true "Name and optional criteria"
// @Success 201 {object} models.ApiResponse{data=models.SavedFilter}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/guardados [post]
func SaveFilter(c *gin.Context) {
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

	var req saveFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	set := req.Criteria
	if set.IsEmpty() {
		if active, err := services.GetFilterStore().Get(ctx, userID); err == nil {
			set = active
		}
	}

	saved, err := services.GetSavedFilterService().Save(ctx, uid, req.Name, set)
	if err != nil {
		log.Printf("[filters.guardar] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save filter"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Filter saved successfully", saved))
}
