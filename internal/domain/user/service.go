// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no account matches the requested id
var ErrUserNotFound = errors.New("user not found")

// Service handles account business logic
type Service struct {
	db              *gorm.DB
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:              db,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// RegisterRequest represents account registration data
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

// LoginRequest represents account login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// UpdateProfileRequest carries the updatable subset of profile fields.
// Only the enumerated fields can ever reach the database.
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	City         *string `json:"city,omitempty"`
	Address      *string `json:"address,omitempty"`
	NPDepartment *string `json:"np_department,omitempty"`
}

// Changes returns the column map to persist. Unset and empty values are
// dropped: an empty string never clears an existing profile field.
func (r *UpdateProfileRequest) Changes() map[string]interface{} {
	updates := make(map[string]interface{})

	set := func(column string, value *string) {
		if value != nil && *value != "" {
			updates[column] = *value
		}
	}

	set("full_name", r.FullName)
	set("phone", r.Phone)
	set("city", r.City)
	set("address", r.Address)
	set("np_department", r.NPDepartment)

	return updates
}

// Register creates a new account and issues API tokens
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	var existing User
	result := s.db.Where("email = ?", req.Email).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("user with this email already exists")
	}

	hashed, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := User{
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Phone:        req.Phone,
	}

	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.buildAuthResponse(&account)
}

// Login authenticates an account by email and password
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	var account User
	result := s.db.Where("email = ?", req.Email).First(&account)
	if result.Error != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := s.passwordManager.VerifyPassword(req.Password, account.PasswordHash); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.buildAuthResponse(&account)
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *Service) RefreshToken(refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	var account User
	result := s.db.Where("id = ?", claims.UserID).First(&account)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}

	return s.buildAuthResponse(&account)
}

// GetProfile returns the sanitized account record
func (s *Service) GetProfile(userID string) (*User, error) {
	var account User
	result := s.db.Where("id = ?", userID).First(&account)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}

	account.Sanitize()
	return &account, nil
}

// UpdateProfile applies a partial profile update and returns the
// refreshed record. Requests that change nothing leave updated_at alone.
func (s *Service) UpdateProfile(userID string, req *UpdateProfileRequest) (*User, error) {
	var account User
	result := s.db.Where("id = ?", userID).First(&account)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}

	updates := req.Changes()
	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := s.db.Model(&User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.GetProfile(userID)
}

// GetUserByEmail returns an account by email
func (s *Service) GetUserByEmail(email string) (*User, error) {
	var account User
	result := s.db.Where("email = ?", email).First(&account)
	if result.Error != nil {
		return nil, ErrUserNotFound
	}

	account.Sanitize()
	return &account, nil
}

func (s *Service) buildAuthResponse(account *User) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	account.Sanitize()

	return &AuthResponse{
		User:         account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
