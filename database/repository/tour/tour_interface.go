package tourRepo

import "smarttour/models"

// TourFilter narrows tour listings.
type TourFilter struct {
	Area   string
	Season string
}

// TourRepository defines persistence operations for the tour catalogue.
type TourRepository interface {
	Create(tour *models.Tour) error
	Update(tour *models.Tour) error
	Delete(id string) error
	GetByID(id string) (*models.Tour, error)
	GetAll(filter TourFilter) ([]models.Tour, error)
	SetImage(id, imageURL string) error
}
