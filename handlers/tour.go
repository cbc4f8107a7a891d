package handlers

import (
	"net/http"

	tourRepo "smarttour/database/repository/tour"
	"smarttour/models"
	tour "smarttour/services/tour"

	"github.com/gin-gonic/gin"
)

// TourHandler exposes tour catalogue endpoints.
type TourHandler struct {
	TourService tour.TourService
}

// ListToursHandler handles GET /api/tours.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	filter := tourRepo.TourFilter{
		Area:   c.Query("area"),
		Season: c.Query("season"),
	}
	tours, err := h.TourService.ListTours(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}

// GetTourHandler handles GET /api/tours/:id.
func (h *TourHandler) GetTourHandler(c *gin.Context) {
	t, err := h.TourService.GetTourByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTourHandler handles POST /api/admin/tours.
func (h *TourHandler) CreateTourHandler(c *gin.Context) {
	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.TourService.CreateTour(t)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTourHandler handles PUT /api/admin/tours/:id.
func (h *TourHandler) UpdateTourHandler(c *gin.Context) {
	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	t.ID = c.Param("id")
	updated, err := h.TourService.UpdateTour(t)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTourHandler handles DELETE /api/admin/tours/:id.
func (h *TourHandler) DeleteTourHandler(c *gin.Context) {
	if err := h.TourService.DeleteTour(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted"})
}
