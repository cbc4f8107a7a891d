package driver

import (
	"fmt"
	"time"

	driverRepo "smarttour/database/repository/driver"
	userRepo "smarttour/database/repository/user"
	"smarttour/models"
	booking "smarttour/services/booking"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// DriverService defines driver-profile operations.
type DriverService interface {
	CreateDriver(d models.Driver) (*models.Driver, error)
	UpdateDriver(d models.Driver) (*models.Driver, error)
	GetDriverByID(id string) (*models.Driver, error)
	GetDriverByUserID(userID string) (*models.Driver, error)
	ListDrivers(status string) ([]models.Driver, error)
	AddReview(driverID string, review models.DriverReview) error
}

// DefaultDriverService implements DriverService.
type DefaultDriverService struct {
	Repo     driverRepo.DriverRepository
	UserRepo userRepo.UserRepository
}

// CreateDriver opens a driver profile for an existing user account.
func (s *DefaultDriverService) CreateDriver(d models.Driver) (*models.Driver, error) {
	if d.UserID == "" || d.LicenseNumber == "" {
		return nil, booking.NewValidationError("userId and licenseNumber are required")
	}
	if d.LicenseExpiry.Before(time.Now()) {
		return nil, booking.NewValidationError("driver license has expired")
	}

	owner, err := s.UserRepo.GetByIDWithProjection(d.UserID, bson.M{"id": 1, "role": 1})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, booking.NewNotFoundError(fmt.Sprintf("user %s not found", d.UserID))
	}

	existing, err := s.Repo.GetByUserID(d.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, booking.NewValidationError(fmt.Sprintf("user %s already has a driver profile", d.UserID))
	}

	d.ID = uuid.New().String()
	if err := s.Repo.Create(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DefaultDriverService) UpdateDriver(d models.Driver) (*models.Driver, error) {
	if d.ID == "" {
		return nil, booking.NewValidationError("driver id is required")
	}
	if err := s.Repo.Update(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DefaultDriverService) GetDriverByID(id string) (*models.Driver, error) {
	d, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, booking.NewNotFoundError(fmt.Sprintf("driver %s not found", id))
	}
	return d, nil
}

// GetDriverByUserID returns the profile linked to a user account, or nil
// when the account has none.
func (s *DefaultDriverService) GetDriverByUserID(userID string) (*models.Driver, error) {
	return s.Repo.GetByUserID(userID)
}

func (s *DefaultDriverService) ListDrivers(status string) ([]models.Driver, error) {
	return s.Repo.GetAll(status)
}

// AddReview appends customer feedback and refreshes the average rating.
func (s *DefaultDriverService) AddReview(driverID string, review models.DriverReview) error {
	if review.Rating < 1 || review.Rating > 5 {
		return booking.NewValidationError("rating must be between 1 and 5")
	}
	d, err := s.GetDriverByID(driverID)
	if err != nil {
		return err
	}
	review.CreatedAt = time.Now()
	if err := s.Repo.AppendReview(driverID, review); err != nil {
		return err
	}

	total := float64(review.Rating)
	for _, r := range d.Reviews {
		total += float64(r.Rating)
	}
	d.Rating = total / float64(len(d.Reviews)+1)
	d.Reviews = append(d.Reviews, review)
	return s.Repo.Update(d)
}
