package provider_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetProviderStock godoc
// @Summary Get one provider's stock
// @Description Returns the provider's products with coverage and suggested quantities, worst state first
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Success 200 {object} models.ApiResponse{data=[]models.ProviderStockItem}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /proveedores/{proveedor}/stock [get]
func GetProviderStock(c *gin.Context) {
	proveedor := c.Param("proveedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := services.GetProviderService().Stock(ctx, proveedor)
	if err != nil {
		log.Printf("[proveedores.stock] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch provider stock"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider stock retrieved successfully", items))
}

// GetProviderDetail godoc
// @Summary Get one provider's drill-down
// @Description Returns the summary row, top products and the daily series for one provider
// @Tags Providers
// @Produce json
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Success 200 {object} models.ApiResponse{data=models.ProviderDetail}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /proveedores/{proveedor} [get]
func GetProviderDetail(c *gin.Context) {
	proveedor := c.Param("proveedor")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	detail, err := services.GetProviderService().Detail(ctx, proveedor, f)
	if err != nil {
		log.Printf("[proveedores.detalle] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch provider detail"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider detail retrieved successfully", detail))
}
