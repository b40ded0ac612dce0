// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a storefront account
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // Never returned in JSON
	FullName     string    `gorm:"size:255" json:"full_name"`
	Phone        string    `gorm:"size:32;index" json:"phone"`
	City         string    `gorm:"size:100" json:"city"`
	Address      string    `gorm:"size:255" json:"address"`
	NPDepartment string    `gorm:"size:100" json:"np_department"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to handle business logic before user creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(u.Email)
	return nil
}

// Sanitize strips credential material before the record leaves the service
func (u *User) Sanitize() {
	u.PasswordHash = ""
}
