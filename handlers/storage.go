package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"smarttour/services/storage"
	tour "smarttour/services/tour"
	vehicle "smarttour/services/vehicle"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles media uploads for the catalogue.
type StorageHandler struct {
	StorageSvc     storage.StorageService
	TourService    tour.TourService
	VehicleService vehicle.VehicleService
}

// allowedTargets maps the entity segment of the upload path to the
// Cloudinary folder its images land in.
var allowedTargets = map[string]string{
	"tours":    "tours/images",
	"vehicles": "vehicles/images",
}

// UploadImageHandler handles POST /api/admin/media/:target/:id.
// It uploads the image and stamps its URL on the tour or vehicle.
func (h *StorageHandler) UploadImageHandler(c *gin.Context) {
	target := c.Param("target")
	id := c.Param("id")
	destFolder, ok := allowedTargets[target]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target; allowed values are 'tours' and 'vehicles'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	switch target {
	case "tours":
		err = h.TourService.SetTourImage(id, downloadURL)
	case "vehicles":
		err = h.VehicleService.SetVehicleImage(id, downloadURL)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": publicID,
		"url":      downloadURL,
	})
}
