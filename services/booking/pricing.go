package booking

import (
	"math"
	"time"

	"smarttour/models"
)

// Policy constants for the line-item cost model. Flat rates, not derived
// from tour or vehicle fields.
const (
	FoodChargePerDay   = 500.0
	DriverChargePerDay = 200.0
	GSTRate            = 0.18
	AdvanceRate        = 0.30
)

// PricingInput carries the already-fetched vehicle rates and trip parameters.
type PricingInput struct {
	VehicleDailyRate      float64
	VehicleRatePerKm      float64
	NumberOfDays          int
	EstimatedKms          float64
	FoodPreferencesActive bool
	NumberOfPassengers    int
}

// CalculateCost produces the itemized cost breakdown. Pure function: no I/O,
// no rounding mid-computation. The food charge is flat per day regardless of
// passenger count.
func CalculateCost(in PricingInput) models.CostBreakdown {
	totalVehicleRent := in.VehicleDailyRate * float64(in.NumberOfDays)
	kmBasedCharge := in.VehicleRatePerKm * in.EstimatedKms

	foodCost := 0.0
	if in.FoodPreferencesActive {
		foodCost = FoodChargePerDay * float64(in.NumberOfDays)
	}

	driverCharges := DriverChargePerDay * float64(in.NumberOfDays)
	accommodationCost := 0.0 // reserved
	discountAmount := 0.0    // reserved

	subtotal := totalVehicleRent + kmBasedCharge + foodCost + driverCharges + accommodationCost - discountAmount
	gst := subtotal * GSTRate

	return models.CostBreakdown{
		VehicleRentPerDay: in.VehicleDailyRate,
		TotalVehicleRent:  totalVehicleRent,
		KmBasedCharge:     kmBasedCharge,
		FoodCost:          foodCost,
		DriverCharges:     driverCharges,
		AccommodationCost: accommodationCost,
		DiscountAmount:    discountAmount,
		Subtotal:          subtotal,
		GST:               gst,
		TotalAmount:       subtotal + gst,
	}
}

// SplitAdvance computes the 30% deposit and the balance. The two always sum
// exactly to totalAmount.
func SplitAdvance(totalAmount float64) (advance, remaining float64) {
	advance = math.Round(totalAmount * AdvanceRate)
	remaining = totalAmount - advance
	return advance, remaining
}

// NumberOfDays derives the billed day count as the ceiling of the exact day
// difference. A non-positive difference is an invalid date range.
func NumberOfDays(start, end time.Time) (int, error) {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 0, NewInvalidDateRangeError("end date must be after start date")
	}
	return days, nil
}
