package purchasing_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

type generateOrderRequest struct {
	Proveedor       string `json:"proveedor" binding:"required"`
	PrioridadMinima string `json:"prioridad_minima"`
}

// purchasingViews are the cached views that go stale when an order is
// generated.
var purchasingViews = []string{
	"purchasing.sugerencias",
	"purchasing.resumen",
	"purchasing.agotados",
	"purchasing.reorden",
}

// GenerateOrder godoc
// @Summary Generate a purchase order
// @Description Builds and persists a purchase order for one provider, optionally keeping only items at or above a minimum priority. Cached purchasing views are invalidated.
// @Tags Purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body generateOrderRequest true "Provider and optional minimum priority"
// @Success 201 {object} models.ApiResponse{data=models.PurchaseOrder}
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/ordenes [post]
func GenerateOrder(c *gin.Context) {
	var req generateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	userEmail, _ := middleware.GetUserEmailFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	order, err := services.GetPurchasingService().GenerateOrder(ctx, req.Proveedor, f, req.PrioridadMinima, userEmail)
	if err != nil {
		log.Printf("[compras.generar-orden] ERROR proveedor=%s err=%v", req.Proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate order"))
		return
	}

	// suggestion views are stale now that an order exists
	for _, view := range purchasingViews {
		if err := cache.Queries.Invalidate(ctx, view); err != nil {
			log.Printf("[compras.generar-orden] failed to invalidate %s: %v", view, err)
		}
	}

	log.Printf("[compras.generar-orden] order %s for %s (%d items)", order.ID, order.Proveedor, order.TotalProductos)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order generated successfully", order))
}

// GetOrderHistory godoc
// @Summary List generated purchase orders
// @Description Returns persisted orders, newest first, optionally filtered by provider
// @Tags Purchasing
// @Produce json
// @Security BearerAuth
// @Param proveedor query string false "Provider name"
// @Success 200 {object} models.ApiResponse{data=[]models.PurchaseOrderRecord}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/ordenes [get]
func GetOrderHistory(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	records, err := services.GetPurchasingService().OrderHistory(ctx, c.Query("proveedor"), 50)
	if err != nil {
		log.Printf("[compras.ordenes] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders retrieved successfully", records))
}
