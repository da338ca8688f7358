package inventory_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetInventory godoc
// @Summary Get the inventory report
// @Description Returns every product with stock, coverage, rotation and inventory value, worst state first
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.InventoryItem}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inventario [get]
func GetInventory(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := cache.Fetch(ctx, cache.Queries, "inventory.items", nil, func(ctx context.Context) ([]models.InventoryItem, error) {
		return services.GetInventoryService().Items(ctx)
	})
	if err != nil {
		log.Printf("[inventario.list] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch inventory"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory retrieved successfully", items))
}

// GetInventorySummary godoc
// @Summary Get the inventory summary
// @Description Counts each stock state and totals the inventory value
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.InventorySummary}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inventario/resumen [get]
func GetInventorySummary(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	resumen, err := cache.Fetch(ctx, cache.Queries, "inventory.resumen", nil, func(ctx context.Context) (models.InventorySummary, error) {
		return services.GetInventoryService().Summary(ctx)
	})
	if err != nil {
		log.Printf("[inventario.resumen] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch inventory summary"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory summary retrieved successfully", resumen))
}

// GetInventoryAlerts godoc
// @Summary Get the inventory alerts
// @Description Returns only the products below the minimum coverage
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.InventoryItem}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inventario/alertas [get]
func GetInventoryAlerts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	alertas, err := services.GetInventoryService().Alerts(ctx)
	if err != nil {
		log.Printf("[inventario.alertas] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch inventory alerts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory alerts retrieved successfully", alertas))
}
