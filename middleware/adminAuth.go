package middleware

import (
	"net/http"

	"smarttour/models"

	"github.com/gin-gonic/gin"
)

// AdminOnly rejects requests whose authenticated role is not admin.
// Must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
