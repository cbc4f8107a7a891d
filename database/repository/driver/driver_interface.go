package driverRepo

import "smarttour/models"

// DriverRepository defines persistence operations for driver profiles.
type DriverRepository interface {
	Create(driver *models.Driver) error
	Update(driver *models.Driver) error
	GetByID(id string) (*models.Driver, error)
	GetByUserID(userID string) (*models.Driver, error)
	GetAll(status string) ([]models.Driver, error)
	IncrementTrips(id string) error
	AppendReview(id string, review models.DriverReview) error
}
