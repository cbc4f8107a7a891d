package handlers

import (
	"net/http"

	"smarttour/models"
	driver "smarttour/services/driver"

	"github.com/gin-gonic/gin"
)

// DriverHandler exposes driver-profile endpoints.
type DriverHandler struct {
	DriverService driver.DriverService
}

// ListDriversHandler handles GET /api/drivers.
func (h *DriverHandler) ListDriversHandler(c *gin.Context) {
	drivers, err := h.DriverService.ListDrivers(c.Query("status"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// GetDriverHandler handles GET /api/drivers/:id.
func (h *DriverHandler) GetDriverHandler(c *gin.Context) {
	d, err := h.DriverService.GetDriverByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDriverHandler handles POST /api/admin/drivers.
func (h *DriverHandler) CreateDriverHandler(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.DriverService.CreateDriver(d)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDriverHandler handles PUT /api/admin/drivers/:id.
func (h *DriverHandler) UpdateDriverHandler(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	d.ID = c.Param("id")
	updated, err := h.DriverService.UpdateDriver(d)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddDriverReviewHandler handles POST /api/drivers/:id/reviews.
func (h *DriverHandler) AddDriverReviewHandler(c *gin.Context) {
	var review models.DriverReview
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	review.UserID = c.GetString("userID")
	if err := h.DriverService.AddReview(c.Param("id"), review); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "review added"})
}
