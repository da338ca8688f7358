package dashboard_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetSalesByDay godoc
// @Summary Get sales grouped by day
// @Description Returns the daily revenue and unit series for the active filters, oldest first
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.DayTotal}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/ventas-por-dia [get]
func GetSalesByDay(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	dias, err := cache.Fetch(ctx, cache.Queries, "dashboard.ventas_por_dia", f.Params(), func(ctx context.Context) ([]models.DayTotal, error) {
		return services.GetSalesService().SalesByDay(ctx, f)
	})
	if err != nil {
		log.Printf("[dashboard.ventas-por-dia] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch daily sales"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily sales retrieved successfully", dias))
}

// GetSalesBySeller godoc
// @Summary Get sales grouped by seller
// @Description Returns the top ten sellers by revenue for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.SellerTotal}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/ventas-por-vendedor [get]
func GetSalesBySeller(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	vendedores, err := cache.Fetch(ctx, cache.Queries, "dashboard.ventas_por_vendedor", f.Params(), func(ctx context.Context) ([]models.SellerTotal, error) {
		return services.GetSalesService().SalesBySeller(ctx, f)
	})
	if err != nil {
		log.Printf("[dashboard.ventas-por-vendedor] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sales by seller"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales by seller retrieved successfully", vendedores))
}

// GetSalesByFamily godoc
// @Summary Get sales grouped by family
// @Description Returns the revenue per product family for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.FamilyTotal}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/ventas-por-familia [get]
func GetSalesByFamily(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	familias, err := cache.Fetch(ctx, cache.Queries, "dashboard.ventas_por_familia", f.Params(), func(ctx context.Context) ([]models.FamilyTotal, error) {
		return services.GetSalesService().SalesByFamily(ctx, f)
	})
	if err != nil {
		log.Printf("[dashboard.ventas-por-familia] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sales by family"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales by family retrieved successfully", familias))
}

// GetSalesByMethod godoc
// @Summary Get sales grouped by payment method
// @Description Returns the revenue per payment method for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.MethodTotal}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/ventas-por-metodo [get]
func GetSalesByMethod(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	metodos, err := cache.Fetch(ctx, cache.Queries, "dashboard.ventas_por_metodo", f.Params(), func(ctx context.Context) ([]models.MethodTotal, error) {
		return services.GetSalesService().SalesByMethod(ctx, f)
	})
	if err != nil {
		log.Printf("[dashboard.ventas-por-metodo] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sales by method"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales by method retrieved successfully", metodos))
}

// GetTopProductsByQuantity godoc
// @Summary Get the most sold products by units
// @Description Returns the products that moved the most units for the active filters
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of products" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.QuantityTotal}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /dashboard/productos-por-cantidad [get]
func GetTopProductsByQuantity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	params := f.Params()
	params["limit"] = limit

	productos, err := cache.Fetch(ctx, cache.Queries, "dashboard.productos_por_cantidad", params, func(ctx context.Context) ([]models.QuantityTotal, error) {
		return services.GetSalesService().TopProductsByQuantity(ctx, f, limit)
	})
	if err != nil {
		log.Printf("[dashboard.productos-por-cantidad] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products by quantity"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products by quantity retrieved successfully", productos))
}
