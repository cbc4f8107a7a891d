package models

import "time"

// Vehicle statuses. Informational only; booking does not gate on them.
const (
	VehicleAvailable   = "available"
	VehicleBooked      = "booked"
	VehicleMaintenance = "maintenance"
)

// Vehicle is a bookable vehicle with the rates the pricing calculator reads.
type Vehicle struct {
	ID                 string    `bson:"id" json:"id"`
	RegistrationNumber string    `bson:"registration_number" json:"registrationNumber"`
	Type               string    `bson:"type" json:"type"` // bus, van, tempo
	Model              string    `bson:"model" json:"model"`
	Capacity           int       `bson:"capacity" json:"capacity"`
	YearOfManufacture  int       `bson:"year_of_manufacture" json:"yearOfManufacture"`
	AC                 bool      `bson:"ac" json:"ac"`
	Features           []string  `bson:"features,omitempty" json:"features,omitempty"`
	DailyRatePerDay    float64   `bson:"daily_rate_per_day" json:"dailyRatePerDay"`
	RatePerKm          float64   `bson:"rate_per_km" json:"ratePerKm"`
	Image              string    `bson:"image,omitempty" json:"image,omitempty"`
	Status             string    `bson:"status" json:"status"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}
