package paymentRepo

import "smarttour/models"

// PaymentRepository defines persistence for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByBooking(bookingID string) ([]models.Payment, error)
	GetByUser(userID string) ([]models.Payment, error)
	SetStatus(id, status string) error
}
