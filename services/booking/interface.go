package booking

import "smarttour/models"

// CreateBookingRequest is the customer-facing booking request.
type CreateBookingRequest struct {
	TourID             string                 `json:"tourId"`
	VehicleID          string                 `json:"vehicleId"`
	DriverID           string                 `json:"driverId,omitempty"`
	StartDate          string                 `json:"startDate"` // RFC 3339 or YYYY-MM-DD
	EndDate            string                 `json:"endDate"`
	NumberOfPassengers int                    `json:"numberOfPassengers"`
	Passengers         []models.Passenger     `json:"passengers"`
	EstimatedKms       float64                `json:"estimatedKms"`
	FoodPreferences    models.FoodPreferences `json:"foodPreferences"`
	SpecialRequests    string                 `json:"specialRequests,omitempty"`
}

// EstimateRequest asks for a cost preview without persisting anything.
type EstimateRequest struct {
	VehicleID       string                 `json:"vehicleId"`
	StartDate       string                 `json:"startDate"`
	EndDate         string                 `json:"endDate"`
	EstimatedKms    float64                `json:"estimatedKms"`
	FoodPreferences models.FoodPreferences `json:"foodPreferences"`
	Passengers      int                    `json:"numberOfPassengers"`
}

// EstimateResponse is a short-lived quote backed by the same calculator that
// prices real bookings.
type EstimateResponse struct {
	QuoteID         string               `json:"quoteId"`
	NumberOfDays    int                  `json:"numberOfDays"`
	CostBreakdown   models.CostBreakdown `json:"costBreakdown"`
	AdvanceAmount   float64              `json:"advanceAmount"`
	RemainingAmount float64              `json:"remainingAmount"`
}

// BookingService defines the booking pricing and lifecycle operations.
type BookingService interface {
	CreateBooking(userID string, req CreateBookingRequest) (*models.Booking, error)
	Estimate(req EstimateRequest) (*EstimateResponse, error)
	GetBooking(actor Actor, id string) (*models.Booking, error)
	ListUserBookings(userID string) ([]models.Booking, error)
	ListDriverBookings(driverID string) ([]models.Booking, error)
	ListAllBookings(actor Actor) ([]models.Booking, error)
	AssignDriver(actor Actor, bookingID, driverID string) (*models.Booking, error)
	Transition(actor Actor, bookingID string, target Status, reason string) (*models.Booking, error)
}

// ReminderScheduler schedules the pre-trip payment reminder for a booking.
type ReminderScheduler interface {
	SchedulePaymentReminder(b models.Booking) error
}
