package user

import "smarttour/models"

// RegisterRequest carries the fields needed to open an account.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role,omitempty"` // defaults to customer
	Address     string `json:"address,omitempty"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

// AuthResponse is returned on successful register/login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService defines account operations.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, req UpdateProfileRequest) (*models.User, error)
	RevokeToken(tokenString string) error
	GetAllUsers() ([]models.User, error)
	MarkNotificationsRead(id string) error
}
