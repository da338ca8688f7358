package purchasing_controller

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

// GetSuggestions godoc
// @Summary Get restock suggestions
// @Description Returns the purchase suggestions computed from the 30-day velocity and the live stock, most urgent first
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.PurchaseSuggestion}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/sugerencias [get]
func GetSuggestions(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	sugerencias, err := cache.Fetch(ctx, cache.Queries, "purchasing.sugerencias", f.Params(), func(ctx context.Context) ([]models.PurchaseSuggestion, error) {
		return services.GetPurchasingService().Suggestions(ctx, f)
	})
	if err != nil {
		log.Printf("[compras.sugerencias] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch suggestions"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions retrieved successfully", sugerencias))
}

// GetSummary godoc
// @Summary Get the purchasing overview
// @Description Returns totals, priority buckets, the per-provider view and the out-of-stock report
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.PurchasingSummary}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/resumen [get]
func GetSummary(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	resumen, err := cache.Fetch(ctx, cache.Queries, "purchasing.resumen", f.Params(), func(ctx context.Context) (models.PurchasingSummary, error) {
		return services.GetPurchasingService().Summary(ctx, f)
	})
	if err != nil {
		log.Printf("[compras.resumen] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchasing summary"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchasing summary retrieved successfully", resumen))
}

// GetOutOfStock godoc
// @Summary Get out-of-stock products
// @Description Returns selling products with no stock left, split by how recently the last sale happened
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OutOfStockReport}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/agotados [get]
func GetOutOfStock(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	report, err := cache.Fetch(ctx, cache.Queries, "purchasing.agotados", nil, func(ctx context.Context) (models.OutOfStockReport, error) {
		return services.GetPurchasingService().OutOfStock(ctx), nil
	})
	if err != nil {
		log.Printf("[compras.agotados] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch out-of-stock report"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Out-of-stock report retrieved successfully", report))
}

// GetReorderPoints godoc
// @Summary Get the reorder points
// @Description Returns reorder points and 30-day targets for products moving at least half a unit a day
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ReorderPoint}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/puntos-reorden [get]
func GetReorderPoints(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	puntos, err := cache.Fetch(ctx, cache.Queries, "purchasing.reorden", f.Params(), func(ctx context.Context) ([]models.ReorderPoint, error) {
		return services.GetPurchasingService().ReorderPoints(ctx, f)
	})
	if err != nil {
		log.Printf("[compras.reorden] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch reorder points"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reorder points retrieved successfully", puntos))
}

// GetProviderSummaries godoc
// @Summary Get the purchase totals per provider
// @Description Returns the suggestion totals grouped by provider, biggest order first
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ProviderPurchaseSummary}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/proveedores [get]
func GetProviderSummaries(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	resumen, err := services.GetPurchasingService().ProviderSummaries(ctx, f)
	if err != nil {
		log.Printf("[compras.proveedores] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch provider summaries"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider summaries retrieved successfully", resumen))
}

// GetStockAlerts godoc
// @Summary Get the stock alert buckets
// @Description Summarizes the urgent end of the suggestion list
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.StockAlerts}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/alertas-stock [get]
func GetStockAlerts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	alerts, err := services.GetPurchasingService().StockAlerts(ctx, f)
	if err != nil {
		log.Printf("[compras.alertas-stock] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stock alerts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock alerts retrieved successfully", alerts))
}
