package handlers

import (
	"net/http"

	payment "smarttour/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	PaymentService payment.PaymentService
}

// CreateIntentHandler handles POST /api/payments/intent.
func (h *PaymentHandler) CreateIntentHandler(c *gin.Context) {
	var req payment.IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.PaymentService.CreateIntent(c.GetString("userID"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPaymentHandler handles POST /api/payments.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	var req payment.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	pay, err := h.PaymentService.RecordPayment(c.GetString("userID"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pay)
}

// ListBookingPaymentsHandler handles GET /api/payments/booking/:bookingId.
func (h *PaymentHandler) ListBookingPaymentsHandler(c *gin.Context) {
	payments, err := h.PaymentService.ListPayments(c.Param("bookingId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
