package models

import "time"

// Roles recognised by the platform.
const (
	RoleCustomer = "customer"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)

// User represents a platform account (customer, driver or admin).
type User struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Email         string         `bson:"email" json:"email"`
	PhoneNumber   string         `bson:"phone_number" json:"phoneNumber"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	Role          string         `bson:"role" json:"role"`
	Address       string         `bson:"address,omitempty" json:"address,omitempty"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}
