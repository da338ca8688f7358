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

// GetRanking godoc
// @Summary Get the seller ranking
// @Description Returns every seller with totals and a performance tier relative to the team average
// @Tags Sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.SellerRanking}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /vendedores/ranking [get]
func GetRanking(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	ranking, err := cache.Fetch(ctx, cache.Queries, "sellers.ranking", f.Params(), func(ctx context.Context) ([]models.SellerRanking, error) {
		return services.GetSellerService().Ranking(ctx, f)
	})
	if err != nil {
		log.Printf("[vendedores.ranking] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch seller ranking"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Seller ranking retrieved successfully", ranking))
}
