// internal/domain/wishlist/service.go
package wishlist

import (
	"fmt"
	"time"

	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/product"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Caps the product fetch when expanding the wishlist into records.
const maxProductFetch = 100

// Service handles wishlist business logic
type Service struct {
	db             *gorm.DB
	config         *config.Config
	productService *product.Service
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:             db,
		config:         cfg,
		productService: product.NewService(db, cfg),
	}
}

// WishlistResponse holds the expanded product records
type WishlistResponse struct {
	Items []product.Product `json:"items"`
}

// GetWishlist expands the user's wished product ids into product
// records. Ids without a matching product are dropped, and the result
// order follows the fetch, not the wishlist.
func (s *Service) GetWishlist(userID string) (*WishlistResponse, error) {
	ids, err := s.productIDs(userID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return &WishlistResponse{Items: []product.Product{}}, nil
	}

	products, err := s.productService.GetByIDs(ids, maxProductFetch)
	if err != nil {
		return nil, err
	}

	return &WishlistResponse{Items: products}, nil
}

// Add inserts a product id into the user's wishlist. Adding an id that
// is already present only touches updated_at, never a second row. The
// product is not checked for existence.
func (s *Service) Add(userID, productID string) error {
	item := WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}

	err := s.db.Clauses(addConflictClause(time.Now().UTC())).Create(&item).Error
	if err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}

	return nil
}

// addConflictClause turns a duplicate insert into an updated_at bump
// on the existing row.
func addConflictClause(now time.Time) clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"updated_at": now,
		}),
	}
}

// Remove deletes a product id from the user's wishlist. Removing an
// absent id, or from a user with no wishlist, is a no-op.
func (s *Service) Remove(userID, productID string) error {
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&WishlistItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}

	return nil
}

// productIDs returns the wished product ids for a user
func (s *Service) productIDs(userID string) ([]string, error) {
	var ids []string
	err := s.db.Model(&WishlistItem{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	return ids, nil
}
