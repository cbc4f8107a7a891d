package vehicleRepo

import "smarttour/models"

// VehicleFilter narrows vehicle listings.
type VehicleFilter struct {
	Type        string
	Status      string
	MinCapacity int
}

// VehicleRepository defines persistence operations for the vehicle fleet.
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	Delete(id string) error
	GetByID(id string) (*models.Vehicle, error)
	GetAll(filter VehicleFilter) ([]models.Vehicle, error)
	SetStatus(id, status string) error
	SetImage(id, imageURL string) error
}
