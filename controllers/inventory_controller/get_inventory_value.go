package inventory_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// GetValueByFamily godoc
// @Summary Get the inventory value per family
// @Description Breaks the inventory value down per family with alert counts
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.FamilyInventoryValue}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inventario/valor-por-familia [get]
func GetValueByFamily(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	valores, err := services.GetInventoryService().ValueByFamily(ctx)
	if err != nil {
		log.Printf("[inventario.valor-familia] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch inventory value"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory value retrieved successfully", valores))
}

// GetValueByProvider godoc
// @Summary Get the inventory value per provider
// @Description Breaks the inventory value down per provider
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.ProviderInventoryValue}
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inventario/valor-por-proveedor [get]
func GetValueByProvider(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	valores, err := services.GetInventoryService().ValueByProvider(ctx)
	if err != nil {
		log.Printf("[inventario.valor-proveedor] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch inventory value"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory value retrieved successfully", valores))
}

// GetProductDetail godoc
// @Summary Get one product's inventory detail
// @Description Returns the inventory row with the ABC class and the daily sales series
// @Tags Inventory
// @Produce json
// @Security BearerAuth
// @Param nombre path string true "Product name"
// @Success 200 {object} models.ApiResponse{data=models.InventoryProductDetail}
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /inventario/producto/{nombre} [get]
func GetProductDetail(c *gin.Context) {
	nombre := c.Param("nombre")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	detail, err := services.GetInventoryService().ProductDetail(ctx, nombre)
	if err != nil {
		log.Printf("[inventario.producto] nombre=%s err=%v", nombre, err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product detail retrieved successfully", detail))
}
