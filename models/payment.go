package models

import "time"

// Payment methods accepted by the platform.
const (
	MethodCreditCard = "credit-card"
	MethodDebitCard  = "debit-card"
	MethodUPI        = "upi"
	MethodCash       = "cash"
)

// Payment types relative to the booking total.
const (
	PaymentTypeAdvance = "advance"
	PaymentTypeBalance = "balance"
	PaymentTypeFull    = "full"
)

// Payment is a recorded transaction against a booking.
type Payment struct {
	ID                    string    `bson:"id" json:"id"`
	Reference             string    `bson:"reference" json:"reference"`
	BookingID             string    `bson:"booking_id" json:"bookingId"`
	UserID                string    `bson:"user_id" json:"userId"`
	Amount                float64   `bson:"amount" json:"amount"`
	Currency              string    `bson:"currency" json:"currency"`
	PaymentMethod         string    `bson:"payment_method" json:"paymentMethod"`
	PaymentType           string    `bson:"payment_type" json:"paymentType"`
	TransactionID         string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	StripePaymentIntentID string    `bson:"stripe_payment_intent_id,omitempty" json:"stripePaymentIntentId,omitempty"`
	Status                string    `bson:"status" json:"status"` // pending, completed, failed
	CreatedAt             time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReminderPayload is the asynq task body for a scheduled payment reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
