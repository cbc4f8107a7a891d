package booking

import (
	"fmt"
	"time"

	bookingRepo "smarttour/database/repository/booking"
	driverRepo "smarttour/database/repository/driver"
	tourRepo "smarttour/database/repository/tour"
	vehicleRepo "smarttour/database/repository/vehicle"
	"smarttour/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	TourRepo    tourRepo.TourRepository
	VehicleRepo vehicleRepo.VehicleRepository
	DriverRepo  driverRepo.DriverRepository
	CacheClient *redis.Client     // short-lived estimate quotes
	Reminders   ReminderScheduler // optional
	Logger      *zap.Logger
}

// dateFormats accepted for start/end dates.
var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewValidationError(fmt.Sprintf("unrecognized date %q", s))
}

func (s *DefaultBookingService) validateCreate(req CreateBookingRequest) error {
	if req.TourID == "" || req.VehicleID == "" {
		return NewValidationError("tourId and vehicleId are required")
	}
	if req.NumberOfPassengers <= 0 {
		return NewValidationError("numberOfPassengers must be positive")
	}
	if len(req.Passengers) != req.NumberOfPassengers {
		return NewValidationError(fmt.Sprintf("expected %d passenger records, got %d", req.NumberOfPassengers, len(req.Passengers)))
	}
	for i, p := range req.Passengers {
		if p.Name == "" || p.Age <= 0 {
			return NewValidationError(fmt.Sprintf("passenger %d is missing a name or a valid age", i+1))
		}
		if p.Email == "" && p.Phone == "" {
			return NewValidationError(fmt.Sprintf("passenger %d needs an email or phone contact", i+1))
		}
	}
	if req.EstimatedKms < 0 {
		return NewValidationError("estimatedKms cannot be negative")
	}
	return nil
}

// CreateBooking computes the day count and cost breakdown, generates the
// booking reference and persists the booking. Cost fields are computed
// exactly once here and never recomputed.
func (s *DefaultBookingService) CreateBooking(userID string, req CreateBookingRequest) (*models.Booking, error) {
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	days, err := NumberOfDays(start, end)
	if err != nil {
		return nil, err
	}

	tour, err := s.TourRepo.GetByID(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("tour lookup failed: %w", err)
	}
	if tour == nil {
		return nil, NewNotFoundError(fmt.Sprintf("tour %s not found", req.TourID))
	}
	vehicle, err := s.VehicleRepo.GetByID(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle lookup failed: %w", err)
	}
	if vehicle == nil {
		return nil, NewNotFoundError(fmt.Sprintf("vehicle %s not found", req.VehicleID))
	}
	if req.DriverID != "" {
		driver, err := s.DriverRepo.GetByID(req.DriverID)
		if err != nil {
			return nil, fmt.Errorf("driver lookup failed: %w", err)
		}
		if driver == nil {
			return nil, NewNotFoundError(fmt.Sprintf("driver %s not found", req.DriverID))
		}
	}

	breakdown := CalculateCost(PricingInput{
		VehicleDailyRate:      vehicle.DailyRatePerDay,
		VehicleRatePerKm:      vehicle.RatePerKm,
		NumberOfDays:          days,
		EstimatedKms:          req.EstimatedKms,
		FoodPreferencesActive: req.FoodPreferences.Any(),
		NumberOfPassengers:    req.NumberOfPassengers,
	})
	advance, remaining := SplitAdvance(breakdown.TotalAmount)

	booking := &models.Booking{
		ID:                 uuid.New().String(),
		Reference:          NewBookingReference(),
		UserID:             userID,
		TourID:             req.TourID,
		VehicleID:          req.VehicleID,
		DriverID:           req.DriverID,
		StartDate:          start,
		EndDate:            end,
		NumberOfDays:       days,
		NumberOfPassengers: req.NumberOfPassengers,
		Passengers:         req.Passengers,
		EstimatedKms:       req.EstimatedKms,
		FoodPreferences:    req.FoodPreferences,
		CostBreakdown:      breakdown,
		AdvanceAmount:      advance,
		RemainingAmount:    remaining,
		PaymentStatus:      models.PaymentPending,
		BookingStatus:      string(StatusConfirmed),
		SpecialRequests:    req.SpecialRequests,
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.SchedulePaymentReminder(*booking); err != nil {
			s.Logger.Warn("failed to schedule payment reminder",
				zap.String("booking", booking.ID), zap.Error(err))
		}
	}

	s.Logger.Info("booking created",
		zap.String("booking", booking.ID),
		zap.String("reference", booking.Reference),
		zap.Float64("total", breakdown.TotalAmount))
	return booking, nil
}

// GetBooking returns a booking visible to the actor: the owner, the assigned
// driver, or anyone holding the view-all capability.
func (s *DefaultBookingService) GetBooking(actor Actor, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	if actor.Can(CanViewAll) || actor.UserID == b.UserID ||
		(actor.DriverID != "" && actor.DriverID == b.DriverID) {
		return b, nil
	}
	return nil, NewForbiddenError("not permitted to view this booking")
}

// ListUserBookings returns the customer's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID)
}

// ListDriverBookings returns the bookings assigned to a driver.
func (s *DefaultBookingService) ListDriverBookings(driverID string) ([]models.Booking, error) {
	return s.Repo.GetByDriver(driverID)
}

// ListAllBookings returns every booking; requires the view-all capability.
func (s *DefaultBookingService) ListAllBookings(actor Actor) ([]models.Booking, error) {
	if !actor.Can(CanViewAll) {
		return nil, NewForbiddenError("not permitted to list all bookings")
	}
	return s.Repo.GetAll()
}

// AssignDriver sets the driver on a booking; requires the assign capability.
func (s *DefaultBookingService) AssignDriver(actor Actor, bookingID, driverID string) (*models.Booking, error) {
	if !actor.Can(CanAssignDriver) {
		return nil, NewForbiddenError("not permitted to assign drivers")
	}
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}
	driver, err := s.DriverRepo.GetByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, NewNotFoundError(fmt.Sprintf("driver %s not found", driverID))
	}
	if err := s.Repo.AssignDriver(bookingID, driverID); err != nil {
		return nil, err
	}
	b.DriverID = driverID
	s.Logger.Info("driver assigned",
		zap.String("booking", bookingID), zap.String("driver", driverID))
	return b, nil
}

// Transition moves the booking to target under the state machine and the
// actor's capabilities. Cancellation requires a non-empty reason. The status
// write is conditional on the current status, so concurrent identical
// requests yield exactly one success.
func (s *DefaultBookingService) Transition(actor Actor, bookingID string, target Status, reason string) (*models.Booking, error) {
	if !target.IsValid() || target == StatusConfirmed {
		return nil, NewValidationError(fmt.Sprintf("unknown target status %q", target))
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}

	if err := AuthorizeTransition(actor, b, target); err != nil {
		return nil, err
	}

	current := Status(b.BookingStatus)
	if !current.CanTransitionTo(target) {
		return nil, NewInvalidTransitionError(
			fmt.Sprintf("cannot move booking from %s to %s", current, target))
	}

	var applied bool
	if target == StatusCancelled {
		if reason == "" {
			return nil, NewValidationError("a cancellation reason is required")
		}
		applied, err = s.Repo.CancelIfActive(bookingID, reason)
		if applied {
			b.CancellationReason = reason
		}
	} else {
		applied, err = s.Repo.UpdateStatusIf(bookingID, string(current), string(target))
	}
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost the race: the stored status changed between read and write.
		return nil, NewInvalidTransitionError(
			fmt.Sprintf("booking is no longer %s", current))
	}

	b.BookingStatus = string(target)
	if target == StatusCompleted && b.DriverID != "" {
		if err := s.DriverRepo.IncrementTrips(b.DriverID); err != nil {
			s.Logger.Warn("failed to bump driver trip count",
				zap.String("driver", b.DriverID), zap.Error(err))
		}
	}

	s.Logger.Info("booking status changed",
		zap.String("booking", bookingID),
		zap.String("from", string(current)),
		zap.String("to", string(target)))
	return b, nil
}
