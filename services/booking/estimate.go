package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// quoteTTL is how long a pre-booking estimate stays retrievable.
const quoteTTL = 10 * time.Minute

// Estimate prices a prospective booking with the same calculator used at
// creation time, so the preview and the final total always agree. The quote
// is cached briefly in Redis under its quote id.
func (s *DefaultBookingService) Estimate(req EstimateRequest) (*EstimateResponse, error) {
	if req.VehicleID == "" {
		return nil, NewValidationError("vehicleId is required")
	}
	if req.EstimatedKms < 0 {
		return nil, NewValidationError("estimatedKms cannot be negative")
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

	vehicle, err := s.VehicleRepo.GetByID(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle lookup failed: %w", err)
	}
	if vehicle == nil {
		return nil, NewNotFoundError(fmt.Sprintf("vehicle %s not found", req.VehicleID))
	}

	breakdown := CalculateCost(PricingInput{
		VehicleDailyRate:      vehicle.DailyRatePerDay,
		VehicleRatePerKm:      vehicle.RatePerKm,
		NumberOfDays:          days,
		EstimatedKms:          req.EstimatedKms,
		FoodPreferencesActive: req.FoodPreferences.Any(),
		NumberOfPassengers:    req.Passengers,
	})
	advance, remaining := SplitAdvance(breakdown.TotalAmount)

	resp := &EstimateResponse{
		QuoteID:         uuid.New().String(),
		NumberOfDays:    days,
		CostBreakdown:   breakdown,
		AdvanceAmount:   advance,
		RemainingAmount: remaining,
	}

	if s.CacheClient != nil {
		data, err := json.Marshal(resp)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.CacheClient.Set(ctx, "quote:"+resp.QuoteID, data, quoteTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache estimate quote", zap.Error(err))
			}
		}
	}

	return resp, nil
}
