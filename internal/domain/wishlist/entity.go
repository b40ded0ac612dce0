// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"
)

// WishlistItem marks one product as wished by one user. The composite
// unique index gives the product-id set its no-duplicates invariant.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_wishlist_user_product;size:36" json:"user_id"`
	ProductID string    `gorm:"not null;uniqueIndex:idx_wishlist_user_product;size:36" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
