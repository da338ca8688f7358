package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/jupabego97/reportes-react-sub000/models"
)

// ResendClient sends transactional email through the Resend API.
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient reads the API credentials from the environment.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@reportes-dashboard.com"
	}

	return &ResendClient{apiKey: apiKey, from: from}, nil
}

// SendPurchaseOrderEmail sends a purchase order to the buyer with an
// HTML summary and the order sheet attached.
func (r *ResendClient) SendPurchaseOrderEmail(to string, order models.ProviderOrder, attachment []byte, attachmentName string) error {
	var itemsRows strings.Builder
	for _, item := range order.Items {
		precio := 0.0
		if item.PrecioUnitario != nil {
			precio = *item.PrecioUnitario
		}
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%.2f</td>
      </tr>
    `, item.Nombre, item.Cantidad, precio, item.Subtotal))
	}

	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Orden de compra - %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5; padding: 16px;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">ORDEN DE COMPRA</h1>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="vertical-align: top;">
              <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">Proveedor</p>
              <p style="margin: 4px 0; font-size: 14px; color: #262622;">%s</p>
            </td>
            <td style="text-align: right; vertical-align: top;">
              <p style="margin: 0; font-size: 14px; color: #79776d;">Fecha</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
              <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Productos</p>
              <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%d</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0; border-bottom: 1px solid #e5e5e0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Producto</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Cantidad</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Precio</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Subtotal</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>

    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; color: #79776d;">Unidades</td>
            <td style="text-align: right; font-size: 14px; color: #262622;">%d</td>
          </tr>
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e0; padding-top: 8px;">Inversión total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0; padding-top: 8px;">$%.2f</td>
          </tr>
        </table>
      </td>
    </tr>

  </table>
</body>
</html>
`, order.Proveedor,
		order.Proveedor,
		order.FechaGeneracion, order.TotalProductos,
		itemsRows.String(),
		order.TotalUnidades, order.InversionTotal,
	))

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      to,
		"subject": fmt.Sprintf("Orden de compra para %s - %s", order.Proveedor, order.FechaGeneracion),
		"html":    html.String(),
	}
	if len(attachment) > 0 {
		payload["attachments"] = []map[string]interface{}{
			{
				"filename": attachmentName,
				"content":  base64.StdEncoding.EncodeToString(attachment),
			},
		}
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] purchase order email sent to %s for %s", to, order.Proveedor)
	return nil
}
