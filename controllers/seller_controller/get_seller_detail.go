package seller_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetSellerDetail godoc
// @Summary Get one seller's drill-down
// @Description Returns the daily series, top products, payment mix and the gap against the team average for one seller
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Param vendedor path string true "Seller name"
// @Success 200 {object} models.ApiResponse{data=models.SellerDetail}
// @Failure 404 {object} models.ApiResponse "Seller has no sales in the window"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /vendedores/{vendedor} [get]
func GetSellerDetail(c *gin.Context) {
	vendedor := c.Param("vendedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	params := f.Params()
	params["vendedor"] = vendedor

	detail, err := cache.Fetch(ctx, cache.Queries, "sellers.detail", params, func(ctx context.Context) (models.SellerDetail, error) {
		return services.GetSellerService().Detail(ctx, vendedor, f)
	})
	if err != nil {
		log.Printf("[vendedores.detalle] vendedor=%s err=%v", vendedor, err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Seller has no sales in the selected window"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seller detail retrieved successfully", detail))
}
