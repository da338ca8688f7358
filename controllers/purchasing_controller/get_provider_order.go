package purchasing_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetProviderOrder godoc
// @Summary Get the order sheet for one provider
// @Description Returns the detailed order sheet, items sorted by how soon they run out
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Success 200 {object} models.ApiResponse{data=models.ProviderOrder}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/orden/{proveedor} [get]
func GetProviderOrder(c *gin.Context) {
	proveedor := c.Param("proveedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	order, err := services.GetPurchasingService().ProviderOrderSheet(ctx, proveedor, f)
	if err != nil {
		log.Printf("[compras.orden-proveedor] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build order sheet"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order sheet retrieved successfully", order))
}
