package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

type fieldUpdateRequest struct {
	FechaInicio *string  `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	FechaFin    *string  `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
	Valores     []string `json:"valores"`
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
	MinInt      *int     `json:"min_int"`
	MaxInt      *int     `json:"max_int"`
}

// UpdateFilterField godoc
// @Summary Update one filter dimension
// @Description Sets a single dimension of the active filter set, leaving the rest untouched. Dimensions: fechas, productos, vendedores, familias, metodos, proveedores, precio, cantidad.
// @Tags Filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campo path string true "Filter dimension"
// @Param value body fieldUpdateRequest true "New value for the dimension"
// @Success 200 {object} models.ApiResponse{data=models.FilterSet}
// @Failure 400 {object} models.ApiResponse "Unknown dimension or invalid value"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filtros/{campo} [put]
func UpdateFilterField(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req fieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid value"))
		return
	}

	store := services.GetFilterStore()
	ctx := c.Request.Context()
	campo := c.Param("campo")

	var set models.FilterSet
	var err error
	switch campo {
	case "fechas":
		set, err = store.SetDateRange(ctx, userID, req.FechaInicio, req.FechaFin)
	case "productos":
		set, err = store.SetProductos(ctx, userID, req.Valores)
	case "vendedores":
		set, err = store.SetVendedores(ctx, userID, req.Valores)
	case "familias":
		set, err = store.SetFamilias(ctx, userID, req.Valores)
	case "metodos":
		set, err = store.SetMetodos(ctx, userID, req.Valores)
	case "proveedores":
		set, err = store.SetProveedores(ctx, userID, req.Valores)
	case "precio":
		set, err = store.SetPriceRange(ctx, userID, req.Min, req.Max)
	case "cantidad":
		set, err = store.SetQuantityRange(ctx, userID, req.MinInt, req.MaxInt)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown filter dimension"))
		return
	}
	if err != nil {
		log.Printf("[filters.update-field] ERROR campo=%s err=%v", campo, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save filters"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter updated successfully", set))
}
