package payment

import (
	"fmt"
	"math"

	bookingRepo "smarttour/database/repository/booking"
	paymentRepo "smarttour/database/repository/payment"
	"smarttour/models"
	booking "smarttour/services/booking"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentRequest asks Stripe for a client secret before checkout.
type IntentRequest struct {
	BookingID string  `json:"bookingId,omitempty"`
	Amount    float64 `json:"amount"`
}

// IntentResponse carries the client secret the frontend confirms with.
type IntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// RecordRequest records a completed or attempted payment against a booking.
type RecordRequest struct {
	BookingID             string  `json:"bookingId"`
	Amount                float64 `json:"amount"`
	PaymentMethod         string  `json:"paymentMethod"`
	PaymentType           string  `json:"paymentType"`
	TransactionID         string  `json:"transactionId,omitempty"`
	StripePaymentIntentID string  `json:"stripePaymentIntentId,omitempty"`
}

// PaymentService defines payment operations.
type PaymentService interface {
	CreateIntent(userID string, req IntentRequest) (*IntentResponse, error)
	RecordPayment(userID string, req RecordRequest) (*models.Payment, error)
	ListPayments(bookingID string) ([]models.Payment, error)
}

// DefaultPaymentService implements PaymentService against Stripe and Mongo.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Logger      *zap.Logger
}

var cardMethods = map[string]bool{
	models.MethodCreditCard: true,
	models.MethodDebitCard:  true,
}

var validMethods = map[string]bool{
	models.MethodCreditCard: true,
	models.MethodDebitCard:  true,
	models.MethodUPI:        true,
	models.MethodCash:       true,
}

// paise converts rupees to the integer minor unit Stripe expects.
func paise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateIntent creates a Stripe PaymentIntent for the frontend to confirm.
// The booking id may still be unknown at this point.
func (s *DefaultPaymentService) CreateIntent(userID string, req IntentRequest) (*IntentResponse, error) {
	if req.Amount <= 0 {
		return nil, booking.NewValidationError("payment amount must be positive")
	}

	bookingID := req.BookingID
	if bookingID == "" {
		bookingID = "pending"
	}
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(paise(req.Amount)),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", bookingID)
	params.AddMetadata("userId", userID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &IntentResponse{ClientSecret: pi.ClientSecret, PaymentIntentID: pi.ID}, nil
}

func (s *DefaultPaymentService) validateRecord(req RecordRequest) error {
	if req.BookingID == "" {
		return booking.NewValidationError("bookingId is required")
	}
	if req.Amount <= 0 {
		return booking.NewValidationError("payment amount must be positive")
	}
	if !validMethods[req.PaymentMethod] {
		return booking.NewValidationError(fmt.Sprintf("unsupported payment method %q", req.PaymentMethod))
	}
	switch req.PaymentType {
	case models.PaymentTypeAdvance, models.PaymentTypeBalance, models.PaymentTypeFull:
		return nil
	default:
		return booking.NewValidationError(fmt.Sprintf("unsupported payment type %q", req.PaymentType))
	}
}

// RecordPayment charges card payments through Stripe, persists the payment
// record, and rolls the booking's payment status forward. Booking lifecycle
// status is never touched here; that belongs to the state machine.
func (s *DefaultPaymentService) RecordPayment(userID string, req RecordRequest) (*models.Payment, error) {
	if err := s.validateRecord(req); err != nil {
		return nil, err
	}

	b, err := s.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, booking.NewNotFoundError(fmt.Sprintf("booking %s not found", req.BookingID))
	}

	intentID := req.StripePaymentIntentID
	status := "completed"

	if cardMethods[req.PaymentMethod] {
		params := &stripe.PaymentIntentParams{
			Amount:        stripe.Int64(paise(req.Amount)),
			Currency:      stripe.String(string(stripe.CurrencyINR)),
			PaymentMethod: stripe.String(req.TransactionID),
			Confirm:       stripe.Bool(true),
			AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
				Enabled:        stripe.Bool(true),
				AllowRedirects: stripe.String("never"),
			},
		}
		params.AddMetadata("bookingId", req.BookingID)
		params.AddMetadata("userId", userID)

		pi, err := paymentintent.New(params)
		if err != nil {
			s.Logger.Error("stripe payment failed",
				zap.String("booking", req.BookingID), zap.Error(err))
			return nil, booking.NewValidationError("payment processing failed")
		}
		intentID = pi.ID
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			status = "pending"
		}
	}

	pay := &models.Payment{
		ID:                    uuid.New().String(),
		Reference:             booking.NewPaymentReference(),
		BookingID:             req.BookingID,
		UserID:                userID,
		Amount:                req.Amount,
		Currency:              "inr",
		PaymentMethod:         req.PaymentMethod,
		PaymentType:           req.PaymentType,
		TransactionID:         req.TransactionID,
		StripePaymentIntentID: intentID,
		Status:                status,
	}
	if err := s.Repo.Create(pay); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if status == "completed" {
		paymentStatus := models.PaymentAdvancePaid
		if req.PaymentType != models.PaymentTypeAdvance {
			paymentStatus = models.PaymentCompleted
		}
		if err := s.BookingRepo.SetPaymentStatus(req.BookingID, paymentStatus); err != nil {
			s.Logger.Warn("failed to roll booking payment status",
				zap.String("booking", req.BookingID), zap.Error(err))
		}
	}

	s.Logger.Info("payment recorded",
		zap.String("payment", pay.ID),
		zap.String("booking", req.BookingID),
		zap.Float64("amount", req.Amount),
		zap.String("status", status))
	return pay, nil
}

// ListPayments returns all payments recorded against a booking.
func (s *DefaultPaymentService) ListPayments(bookingID string) ([]models.Payment, error) {
	return s.Repo.GetByBooking(bookingID)
}
