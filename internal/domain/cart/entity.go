// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart. A user has at most one line
// per product; merging bumps the quantity instead of duplicating.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"not null;index;size:36" json:"user_id"`
	ProductID string          `gorm:"not null;index;size:36" json:"product_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"` // Price at time of adding
	Title     string          `gorm:"size:255" json:"title"`
	Image     string          `gorm:"size:500" json:"image"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName overrides the table name
func (CartItem) TableName() string {
	return "cart_items"
}
