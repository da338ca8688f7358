package middleware

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// pathToResourceType maps URL segments to resource types
var pathToResourceType = map[string]string{
	"filtros":   "filter",
	"guardados": "saved_filter",
	"ordenes":   "purchase_order",
	"export":    "export",
	"email":     "email",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ActivityLoggingMiddleware records mutating dashboard actions. Must
// run after AuthMiddleware, which sets the user identity.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		userIDRaw, userIDExists := c.Get("userID")
		userEmailRaw, userEmailExists := c.Get("userEmail")
		if !userIDExists || !userEmailExists {
			log.Printf("[activity-logging] warning: user info not in context")
			c.Next()
			return
		}

		userID, err := uuid.Parse(userIDRaw.(string))
		if err != nil {
			log.Printf("[activity-logging] failed to parse user ID: %v", err)
			c.Next()
			return
		}
		userEmail := userEmailRaw.(string)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			c.Next()
			return
		}

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			c.Next()
			return
		}
		action := actionVerb + "_" + resourceType

		// keep a copy of the request body for the payload
		var payload any
		if c.Request.Body != nil && c.Request.ContentLength > 0 && c.Request.ContentLength < 64*1024 {
			body, err := io.ReadAll(c.Request.Body)
			if err == nil {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
				payload = string(body)
			}
		}

		c.Next()

		statusCode := c.Writer.Status()
		entry := services.ActivityEntry{
			UserID:       userID,
			UserEmail:    userEmail,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			Payload:      payload,
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}

		if statusCode >= 200 && statusCode < 300 {
			entry.Status = models.StatusSuccess
		} else {
			entry.Status = models.StatusFailed
			entry.ErrorMessage = "Request failed with status " + http.StatusText(statusCode)
		}
		services.GetActivityLogService().Log(entry)
	}
}

// extractResourceType walks the path segments looking for a known
// resource, skipping ID-looking segments.
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "" || isIDParam(parts[i]) {
			continue
		}
		if resourceType, exists := pathToResourceType[parts[i]]; exists {
			return resourceType
		}
	}
	return ""
}

func isIDParam(segment string) bool {
	if segment == ":id" {
		return true
	}
	if _, err := uuid.Parse(segment); err == nil {
		return true
	}
	return false
}
