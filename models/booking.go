package models

import "time"

// Payment statuses carried on a booking. Driven by the payment service.
const (
	PaymentPending     = "pending"
	PaymentAdvancePaid = "advance-paid"
	PaymentPartialPaid = "partial-paid"
	PaymentCompleted   = "completed"
)

// Passenger is one traveller on a booking.
type Passenger struct {
	Name   string `bson:"name" json:"name"`
	Age    int    `bson:"age" json:"age"`
	Email  string `bson:"email,omitempty" json:"email,omitempty"`
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender string `bson:"gender,omitempty" json:"gender,omitempty"`
}

// FoodPreferences are the meal flags a customer picks; any true flag
// activates the flat per-day food charge.
type FoodPreferences struct {
	Breakfast    bool     `bson:"breakfast" json:"breakfast"`
	Lunch        bool     `bson:"lunch" json:"lunch"`
	Dinner       bool     `bson:"dinner" json:"dinner"`
	Snacks       bool     `bson:"snacks" json:"snacks"`
	SpecialDiets []string `bson:"special_diets,omitempty" json:"specialDiets,omitempty"` // veg, non-veg, vegan, etc
}

// Any reports whether at least one meal flag is set.
func (f FoodPreferences) Any() bool {
	return f.Breakfast || f.Lunch || f.Dinner || f.Snacks
}

// CostBreakdown is the itemized price snapshot computed once at creation.
type CostBreakdown struct {
	VehicleRentPerDay float64 `bson:"vehicle_rent_per_day" json:"vehicleRentPerDay"`
	TotalVehicleRent  float64 `bson:"total_vehicle_rent" json:"totalVehicleRent"`
	KmBasedCharge     float64 `bson:"km_based_charge" json:"kmBasedCharge"`
	FoodCost          float64 `bson:"food_cost" json:"foodCost"`
	DriverCharges     float64 `bson:"driver_charges" json:"driverCharges"`
	AccommodationCost float64 `bson:"accommodation_cost" json:"accommodationCost"`
	DiscountAmount    float64 `bson:"discount_amount" json:"discountAmount"`
	Subtotal          float64 `bson:"subtotal" json:"subtotal"`
	GST               float64 `bson:"gst" json:"gst"`
	TotalAmount       float64 `bson:"total_amount" json:"totalAmount"`
}

// Booking is the aggregate root: a reserved tour+vehicle+date-range package
// with a computed price and a lifecycle status.
type Booking struct {
	ID                 string          `bson:"id" json:"id"`
	Reference          string          `bson:"reference" json:"reference"`
	UserID             string          `bson:"user_id" json:"userId"`
	TourID             string          `bson:"tour_id" json:"tourId"`
	VehicleID          string          `bson:"vehicle_id" json:"vehicleId"`
	DriverID           string          `bson:"driver_id,omitempty" json:"driverId,omitempty"`
	StartDate          time.Time       `bson:"start_date" json:"startDate"`
	EndDate            time.Time       `bson:"end_date" json:"endDate"`
	NumberOfDays       int             `bson:"number_of_days" json:"numberOfDays"`
	NumberOfPassengers int             `bson:"number_of_passengers" json:"numberOfPassengers"`
	Passengers         []Passenger     `bson:"passengers" json:"passengers"`
	EstimatedKms       float64         `bson:"estimated_kms" json:"estimatedKms"`
	FoodPreferences    FoodPreferences `bson:"food_preferences" json:"foodPreferences"`
	CostBreakdown      CostBreakdown   `bson:"cost_breakdown" json:"costBreakdown"`
	AdvanceAmount      float64         `bson:"advance_amount" json:"advanceAmount"`
	RemainingAmount    float64         `bson:"remaining_amount" json:"remainingAmount"`
	PaymentStatus      string          `bson:"payment_status" json:"paymentStatus"`
	BookingStatus      string          `bson:"booking_status" json:"bookingStatus"`
	CancellationReason string          `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
	SpecialRequests    string          `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt          time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time       `bson:"updated_at" json:"updatedAt"`
}
