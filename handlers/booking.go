package handlers

import (
	"net/http"

	"smarttour/middleware"
	booking "smarttour/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking pricing and lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

// EstimateHandler handles POST /api/bookings/estimate.
func (h *BookingHandler) EstimateHandler(c *gin.Context) {
	var req booking.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	quote, err := h.BookingService.Estimate(req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.BookingService.CreateBooking(c.GetString("userID"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return
	}
	b, err := h.BookingService.GetBooking(actor, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListUserBookings(c.GetString("userID"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAssignedBookingsHandler handles GET /api/bookings/assigned for drivers.
func (h *BookingHandler) ListAssignedBookingsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return
	}
	if actor.DriverID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "no driver profile linked to this account"})
		return
	}
	bookings, err := h.BookingService.ListDriverBookings(actor.DriverID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAllBookingsHandler handles GET /api/admin/bookings.
func (h *BookingHandler) ListAllBookingsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListAllBookings(actor)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AssignDriverHandler handles POST /api/admin/bookings/:id/driver.
func (h *BookingHandler) AssignDriverHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return
	}
	var req struct {
		DriverID string `json:"driverId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.BookingService.AssignDriver(actor, c.Param("id"), req.DriverID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// TransitionHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) TransitionHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.BookingService.Transition(actor, c.Param("id"), booking.Status(req.Status), req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b, err := h.BookingService.Transition(actor, c.Param("id"), booking.StatusCancelled, req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
