package purchasing_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/config"
	"github.com/jupabego97/reportes-react-sub000/middleware"
	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
	"github.com/jupabego97/reportes-react-sub000/utils"
)

type emailOrderRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// EmailProviderOrder godoc
// @Summary Email the order sheet for one provider
// @Description Builds the order sheet and sends it to the given address with a PDF attachment
// @Tags Purchasing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param proveedor path string true "Provider name"
// @Param recipient body emailOrderRequest true "Recipient address"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request body or empty order"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /compras/orden/{proveedor}/email [post]
func EmailProviderOrder(c *gin.Context) {
	proveedor := c.Param("proveedor")

	var req emailOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	f := middleware.FiltersFromContext(c)
	order, err := services.GetPurchasingService().ProviderOrderSheet(ctx, proveedor, f)
	if err != nil {
		log.Printf("[compras.email-orden] ERROR proveedor=%s err=%v", proveedor, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build order sheet"))
		return
	}
	if len(order.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No items to order for this provider"))
		return
	}

	mailer, err := services.NewResendClient()
	if err != nil {
		log.Printf("[compras.email-orden] mailer unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Email is not configured"))
		return
	}

	pdfContent := services.GetExportService().OrderPDF(order)
	filename := utils.ExportFilename("orden_"+proveedor, "pdf")

	go func() {
		if err := mailer.SendPurchaseOrderEmail(req.Email, order, pdfContent, filename); err != nil {
			log.Printf("[compras.email-orden] failed to send to %s: %v", req.Email, err)
		}
	}()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order email queued successfully", map[string]any{
		"proveedor": proveedor,
		"email":     req.Email,
	}))
}
