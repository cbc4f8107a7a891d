package handlers

import (
	"net/http"
	"strconv"

	vehicleRepo "smarttour/database/repository/vehicle"
	"smarttour/models"
	vehicle "smarttour/services/vehicle"

	"github.com/gin-gonic/gin"
)

// VehicleHandler exposes fleet endpoints.
type VehicleHandler struct {
	VehicleService vehicle.VehicleService
}

// ListVehiclesHandler handles GET /api/vehicles.
func (h *VehicleHandler) ListVehiclesHandler(c *gin.Context) {
	minCapacity, _ := strconv.Atoi(c.Query("minCapacity"))
	filter := vehicleRepo.VehicleFilter{
		Type:        c.Query("type"),
		Status:      c.Query("status"),
		MinCapacity: minCapacity,
	}
	vehicles, err := h.VehicleService.ListVehicles(filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetVehicleHandler handles GET /api/vehicles/:id.
func (h *VehicleHandler) GetVehicleHandler(c *gin.Context) {
	v, err := h.VehicleService.GetVehicleByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreateVehicleHandler handles POST /api/admin/vehicles.
func (h *VehicleHandler) CreateVehicleHandler(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.VehicleService.CreateVehicle(v)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVehicleHandler handles PUT /api/admin/vehicles/:id.
func (h *VehicleHandler) UpdateVehicleHandler(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	v.ID = c.Param("id")
	updated, err := h.VehicleService.UpdateVehicle(v)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetVehicleStatusHandler handles PATCH /api/admin/vehicles/:id/status.
func (h *VehicleHandler) SetVehicleStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.VehicleService.SetVehicleStatus(c.Param("id"), req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle status updated"})
}

// DeleteVehicleHandler handles DELETE /api/admin/vehicles/:id.
func (h *VehicleHandler) DeleteVehicleHandler(c *gin.Context) {
	if err := h.VehicleService.DeleteVehicle(c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
