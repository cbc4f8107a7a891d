package middleware

import (
	"net/http"

	driverRepo "smarttour/database/repository/driver"
	"smarttour/models"
	booking "smarttour/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResolveActor maps the authenticated role to a capability-holding actor and
// sets it on the request context. Driver accounts get their linked driver
// profile looked up so assignment checks can match on it. Must run after
// AuthMiddleware.
func ResolveActor(drivers driverRepo.DriverRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		role := c.GetString("role")

		var actor booking.Actor
		switch role {
		case models.RoleAdmin:
			actor = booking.AdminActor(userID)
		case models.RoleDriver:
			driverID := ""
			d, err := drivers.GetByUserID(userID)
			if err != nil {
				zap.L().Warn("failed to resolve driver profile",
					zap.String("user", userID), zap.Error(err))
			} else if d != nil {
				driverID = d.ID
			}
			actor = booking.DriverActor(userID, driverID)
		default:
			actor = booking.CustomerActor(userID)
		}

		c.Set("actor", actor)
		c.Next()
	}
}

// GetActor retrieves the resolved actor from the request context.
func GetActor(c *gin.Context) (booking.Actor, bool) {
	v, exists := c.Get("actor")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return booking.Actor{}, false
	}
	actor, ok := v.(booking.Actor)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return booking.Actor{}, false
	}
	return actor, true
}
