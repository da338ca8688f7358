package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jupabego97/reportes-react-sub000/models"
	"github.com/jupabego97/reportes-react-sub000/services"
)

// FilterMiddleware resolves the user's active filter set and puts it on
// the context, so every analytics handler reads the same filters the
// dashboard shows. Must run after AuthMiddleware.
func FilterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Set("filters", models.DefaultFilterSet())
			c.Next()
			return
		}

		set, err := services.GetFilterStore().Get(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[filters] load failed for user %s: %v", userID, err)
			set = models.DefaultFilterSet()
		}
		c.Set("filters", set)
		c.Next()
	}
}

// FiltersFromContext returns the resolved filter set, or the defaults
// when the middleware did not run.
func FiltersFromContext(c *gin.Context) models.FilterSet {
	if raw, exists := c.Get("filters"); exists {
		if set, ok := raw.(models.FilterSet); ok {
			return set
		}
	}
	return models.DefaultFilterSet()
}
