// internal/domain/session/entity.go
package session

import (
	"time"

	"gorm.io/gorm"
)

// UserSession maps an opaque session token to an account.
// A token refers to at most one user. Expiry is stored for future
// enforcement but is not checked on resolution.
type UserSession struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SessionToken string     `gorm:"uniqueIndex;not null;size:64" json:"session_token"`
	UserID       string     `gorm:"not null;index;size:36" json:"user_id"`
	ExpiresAt    *time.Time `json:"expires_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// GuestSession is an unauthenticated-checkout identity
type GuestSession struct {
	GuestID    string         `gorm:"primaryKey;size:36" json:"guest_id"`
	GuestToken string         `gorm:"uniqueIndex;not null;size:64" json:"guest_token"`
	FullName   string         `gorm:"size:255" json:"full_name"`
	Phone      string         `gorm:"size:32" json:"phone"`
	Email      string         `gorm:"size:255" json:"email"`
	ExpiresAt  time.Time      `json:"expires_at"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// PhoneOTP holds a one-time code issued for phone verification.
// TODO: bind to the OTP request/verify endpoints once SMS delivery lands.
type PhoneOTP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Phone     string    `gorm:"not null;index;size:32" json:"phone"`
	Code      string    `gorm:"not null;size:8" json:"-"`
	Used      bool      `gorm:"default:false" json:"used"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// OTPRequest asks for a code to be sent to a phone number
type OTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// OTPVerify exchanges a delivered code for a cabinet session
type OTPVerify struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// OTPResponse reports the outcome of an OTP request
type OTPResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ExpiresIn int    `json:"expires_in,omitempty"`
}

// CabinetSession is the response shape for an OTP-established session
type CabinetSession struct {
	Token     string `json:"token"`
	Phone     string `json:"phone"`
	ExpiresAt string `json:"expires_at"`
}

// TableName overrides the table name
func (UserSession) TableName() string {
	return "user_sessions"
}

// TableName overrides the table name
func (GuestSession) TableName() string {
	return "guest_sessions"
}

// TableName overrides the table name
func (PhoneOTP) TableName() string {
	return "phone_otps"
}
