package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "smarttour/database/repository/user"
	"smarttour/models"
	booking "smarttour/services/booking"
	"smarttour/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long issued JWTs stay valid.
const tokenDuration = 72 * time.Hour

var allowedRoles = map[string]bool{
	models.RoleCustomer: true,
	models.RoleDriver:   true,
	models.RoleAdmin:    true,
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register validates the request, hashes the password and creates the account.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.PhoneNumber == "" {
		return nil, booking.NewValidationError("name, email, phone number and password are required")
	}
	if len(req.Password) < 8 {
		return nil, booking.NewValidationError("password must be at least 8 characters")
	}
	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if !allowedRoles[role] {
		return nil, booking.NewValidationError(fmt.Sprintf("unknown role %q", role))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, booking.NewValidationError("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userRec := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		Address:      req.Address,
	}
	if err := s.Repo.Create(userRec); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, User: *userRec}, nil
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmailWithProjection(strings.ToLower(strings.TrimSpace(email)), nil)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{Token: token, User: *userRec}, nil
}

// GetUserByID fetches a user record.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	userRec, err := s.Repo.GetByIDWithProjection(id, nil)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, booking.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return userRec, nil
}

// UpdateProfile applies the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(id string, req UpdateProfileRequest) (*models.User, error) {
	userRec, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		userRec.Name = req.Name
	}
	if req.PhoneNumber != "" {
		userRec.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		userRec.Address = req.Address
	}
	if err := s.Repo.Update(userRec); err != nil {
		return nil, err
	}
	return userRec, nil
}

// RevokeToken records the token hash in the auth store until its expiry.
func (s *DefaultUserService) RevokeToken(tokenString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return utils.RevokeToken(ctx, utils.HashToken(tokenString), tokenDuration)
}

// GetAllUsers lists every account without password hashes.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAllWithProjection(bson.M{"password_hash": 0})
}

// MarkNotificationsRead flags every stored notification as read.
func (s *DefaultUserService) MarkNotificationsRead(id string) error {
	userRec, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	for i := range userRec.Notifications {
		userRec.Notifications[i].Read = true
	}
	return s.Repo.Update(userRec)
}
