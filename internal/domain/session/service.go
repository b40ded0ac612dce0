// internal/domain/session/service.go
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Resolver failure taxonomy. Handlers map all three to HTTP 401.
var (
	// ErrUnauthenticated means the request carried no credential at all
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrInvalidSession means the token matches no stored session
	ErrInvalidSession = errors.New("invalid session")
	// ErrAccountNotFound means the session points at a deleted account
	ErrAccountNotFound = errors.New("user not found")
	// ErrGuestNotFound means no guest session matches the token
	ErrGuestNotFound = errors.New("guest session not found")
)

// Service handles session business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new session service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// GuestRequest carries the optional identity captured at guest checkout
type GuestRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// GuestResponse is returned when a guest session is created
type GuestResponse struct {
	GuestToken string `json:"guest_token"`
	GuestID    string `json:"guest_id"`
}

// Resolve maps a session token to its sanitized account record.
// Pure lookup: no expiry check, no side effects.
func (s *Service) Resolve(token string) (*user.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var sess UserSession
	result := s.db.Where("session_token = ?", token).First(&sess)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to look up session: %w", result.Error)
	}

	var account user.User
	result = s.db.Where("id = ?", sess.UserID).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", result.Error)
	}

	account.Sanitize()
	return &account, nil
}

// Create opens a new cabinet session for an account and returns its token
func (s *Service) Create(userID string) (*UserSession, error) {
	expires := time.Now().UTC().Add(s.config.Session.CookieMaxAge)
	sess := UserSession{
		SessionToken: uuid.NewString(),
		UserID:       userID,
		ExpiresAt:    &expires,
	}

	if err := s.db.Create(&sess).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &sess, nil
}

// Delete removes a session by token. Unknown tokens are a no-op.
func (s *Service) Delete(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("session_token = ?", token).Delete(&UserSession{}).Error
}

// CreateGuest opens a guest checkout session
func (s *Service) CreateGuest(req *GuestRequest) (*GuestSession, error) {
	guest := GuestSession{
		GuestID:    uuid.NewString(),
		GuestToken: uuid.NewString(),
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		ExpiresAt:  time.Now().UTC().Add(s.config.Session.GuestTTL),
	}

	if err := s.db.Create(&guest).Error; err != nil {
		return nil, fmt.Errorf("failed to create guest session: %w", err)
	}

	return &guest, nil
}

// GetGuest returns a guest session by its token
func (s *Service) GetGuest(token string) (*GuestSession, error) {
	var guest GuestSession
	result := s.db.Where("guest_token = ?", token).First(&guest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to look up guest session: %w", result.Error)
	}

	return &guest, nil
}
