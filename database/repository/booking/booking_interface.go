package bookingRepo

import "smarttour/models"

// BookingRepository defines persistence operations for bookings.
//
// Status changes go through UpdateStatusIf / CancelIfActive, which perform
// the update only when the stored status still matches the caller's
// expectation, so racing transitions cannot both succeed.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	GetByDriver(driverID string) ([]models.Booking, error)
	GetAll() ([]models.Booking, error)
	AssignDriver(id, driverID string) error
	UpdateStatusIf(id, expected, next string) (bool, error)
	CancelIfActive(id, reason string) (bool, error)
	SetPaymentStatus(id, paymentStatus string) error
}
