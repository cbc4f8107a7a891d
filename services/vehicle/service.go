package vehicle

import (
	"fmt"

	vehicleRepo "smarttour/database/repository/vehicle"
	"smarttour/models"
	booking "smarttour/services/booking"

	"github.com/google/uuid"
)

var validTypes = map[string]bool{"bus": true, "van": true, "tempo": true}

var validStatuses = map[string]bool{
	models.VehicleAvailable:   true,
	models.VehicleBooked:      true,
	models.VehicleMaintenance: true,
}

// VehicleService defines fleet operations.
type VehicleService interface {
	CreateVehicle(v models.Vehicle) (*models.Vehicle, error)
	UpdateVehicle(v models.Vehicle) (*models.Vehicle, error)
	DeleteVehicle(id string) error
	GetVehicleByID(id string) (*models.Vehicle, error)
	ListVehicles(filter vehicleRepo.VehicleFilter) ([]models.Vehicle, error)
	SetVehicleStatus(id, status string) error
	SetVehicleImage(id, imageURL string) error
}

// DefaultVehicleService implements VehicleService.
type DefaultVehicleService struct {
	Repo vehicleRepo.VehicleRepository
}

func (s *DefaultVehicleService) CreateVehicle(v models.Vehicle) (*models.Vehicle, error) {
	if v.RegistrationNumber == "" || v.Model == "" {
		return nil, booking.NewValidationError("registration number and model are required")
	}
	if !validTypes[v.Type] {
		return nil, booking.NewValidationError(fmt.Sprintf("unknown vehicle type %q", v.Type))
	}
	if v.Capacity <= 0 {
		return nil, booking.NewValidationError("capacity must be positive")
	}
	if v.DailyRatePerDay < 0 || v.RatePerKm < 0 {
		return nil, booking.NewValidationError("rates cannot be negative")
	}
	v.ID = uuid.New().String()
	if err := s.Repo.Create(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *DefaultVehicleService) UpdateVehicle(v models.Vehicle) (*models.Vehicle, error) {
	if v.ID == "" {
		return nil, booking.NewValidationError("vehicle id is required")
	}
	if err := s.Repo.Update(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *DefaultVehicleService) DeleteVehicle(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultVehicleService) GetVehicleByID(id string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, booking.NewNotFoundError(fmt.Sprintf("vehicle %s not found", id))
	}
	return v, nil
}

func (s *DefaultVehicleService) ListVehicles(filter vehicleRepo.VehicleFilter) ([]models.Vehicle, error) {
	return s.Repo.GetAll(filter)
}

func (s *DefaultVehicleService) SetVehicleStatus(id, status string) error {
	if !validStatuses[status] {
		return booking.NewValidationError(fmt.Sprintf("unknown vehicle status %q", status))
	}
	return s.Repo.SetStatus(id, status)
}

func (s *DefaultVehicleService) SetVehicleImage(id, imageURL string) error {
	return s.Repo.SetImage(id, imageURL)
}
