package tour

import (
	"fmt"

	tourRepo "smarttour/database/repository/tour"
	"smarttour/models"
	booking "smarttour/services/booking"

	"github.com/google/uuid"
)

// TourService defines catalogue operations for tours.
type TourService interface {
	CreateTour(t models.Tour) (*models.Tour, error)
	UpdateTour(t models.Tour) (*models.Tour, error)
	DeleteTour(id string) error
	GetTourByID(id string) (*models.Tour, error)
	ListTours(filter tourRepo.TourFilter) ([]models.Tour, error)
	SetTourImage(id, imageURL string) error
}

// DefaultTourService implements TourService.
type DefaultTourService struct {
	Repo tourRepo.TourRepository
}

func (s *DefaultTourService) CreateTour(t models.Tour) (*models.Tour, error) {
	if t.Name == "" || t.Description == "" || t.Area == "" || t.Location == "" {
		return nil, booking.NewValidationError("name, description, area and location are required")
	}
	if t.Duration.Days <= 0 {
		return nil, booking.NewValidationError("tour duration must cover at least one day")
	}
	t.ID = uuid.New().String()
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DefaultTourService) UpdateTour(t models.Tour) (*models.Tour, error) {
	if t.ID == "" {
		return nil, booking.NewValidationError("tour id is required")
	}
	if err := s.Repo.Update(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DefaultTourService) DeleteTour(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultTourService) GetTourByID(id string) (*models.Tour, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, booking.NewNotFoundError(fmt.Sprintf("tour %s not found", id))
	}
	return t, nil
}

func (s *DefaultTourService) ListTours(filter tourRepo.TourFilter) ([]models.Tour, error) {
	return s.Repo.GetAll(filter)
}

func (s *DefaultTourService) SetTourImage(id, imageURL string) error {
	return s.Repo.SetImage(id, imageURL)
}
