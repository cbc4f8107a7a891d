package models

import "time"

// Driver statuses.
const (
	DriverActive   = "active"
	DriverInactive = "inactive"
	DriverOnLeave  = "on-leave"
)

// DriverReview is customer feedback tied to a completed booking.
type DriverReview struct {
	BookingID string    `bson:"booking_id" json:"bookingId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// BankDetails holds the driver's payout account.
type BankDetails struct {
	AccountNumber     string `bson:"account_number,omitempty" json:"accountNumber,omitempty"`
	IFSCCode          string `bson:"ifsc_code,omitempty" json:"ifscCode,omitempty"`
	AccountHolderName string `bson:"account_holder_name,omitempty" json:"accountHolderName,omitempty"`
}

// DriverDocuments references uploaded verification documents.
type DriverDocuments struct {
	LicenseProof               string `bson:"license_proof,omitempty" json:"licenseProof,omitempty"`
	AadharProof                string `bson:"aadhar_proof,omitempty" json:"aadharProof,omitempty"`
	BackgroundCheckCertificate string `bson:"background_check_certificate,omitempty" json:"backgroundCheckCertificate,omitempty"`
}

// Driver is a driver profile linked to a user account.
type Driver struct {
	ID               string          `bson:"id" json:"id"`
	UserID           string          `bson:"user_id" json:"userId"`
	LicenseNumber    string          `bson:"license_number" json:"licenseNumber"`
	LicenseExpiry    time.Time       `bson:"license_expiry" json:"licenseExpiry"`
	Experience       int             `bson:"experience" json:"experience"` // years
	Rating           float64         `bson:"rating" json:"rating"`
	Reviews          []DriverReview  `bson:"reviews,omitempty" json:"reviews,omitempty"`
	AssignedVehicles []string        `bson:"assigned_vehicles,omitempty" json:"assignedVehicles,omitempty"`
	TotalTrips       int             `bson:"total_trips" json:"totalTrips"`
	BankDetails      BankDetails     `bson:"bank_details,omitempty" json:"bankDetails,omitempty"`
	Documents        DriverDocuments `bson:"documents,omitempty" json:"documents,omitempty"`
	Status           string          `bson:"status" json:"status"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updatedAt"`
}
