package handlers

import (
	"net/http"

	booking "smarttour/services/booking"
	"smarttour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps business-rule error codes to HTTP statuses.
var statusFor = map[string]int{
	booking.CodeNotFound:          http.StatusNotFound,
	booking.CodeForbidden:         http.StatusForbidden,
	booking.CodeInvalidTransition: http.StatusConflict,
	booking.CodeInvalidDateRange:  http.StatusBadRequest,
	booking.CodeValidation:        http.StatusBadRequest,
}

// writeServiceError translates a service error into an HTTP response. Coded
// business-rule errors keep their message and code; anything else is an
// internal fault that gets logged and masked.
func writeServiceError(c *gin.Context, err error) {
	if code := booking.CodeOf(err); code != "" {
		c.JSON(statusFor[code], gin.H{"error": err.Error(), "code": code})
		return
	}
	utils.GetLogger().Error("request failed",
		zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
