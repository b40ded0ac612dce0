// internal/domain/cart/service.go
package cart

import (
	"fmt"
	"time"

	"github.com/y-store/cabinet-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles cart business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// MergeItems folds incoming lines into an existing cart. Lines are
// matched by product id, first match wins within a single pass, and a
// matched line gets its quantity incremented (incoming quantities of
// zero or less count as 1). Unmatched lines are appended in incoming
// order. The inputs are not mutated.
func MergeItems(existing, incoming []CartItem) []CartItem {
	merged := make([]CartItem, len(existing))
	copy(merged, existing)

	for _, item := range incoming {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}

		matched := false
		for i := range merged {
			if merged[i].ProductID == item.ProductID {
				merged[i].Quantity += qty
				matched = true
				break
			}
		}

		if !matched {
			merged = append(merged, CartItem{
				ProductID: item.ProductID,
				Quantity:  qty,
				Price:     item.Price,
				Title:     item.Title,
				Image:     item.Image,
			})
		}
	}

	return merged
}

// GetItems loads the cart lines for a user. A user with no cart yet
// gets an empty slice.
func (s *Service) GetItems(userID string) ([]CartItem, error) {
	items := []CartItem{}
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return items, nil
}

// ReplaceItems overwrites the user's cart with the given lines.
// Replace semantics: the whole item list is swapped in one transaction,
// so concurrent writers resolve last-writer-wins.
func (s *Service) ReplaceItems(userID string, items []CartItem) error {
	now := time.Now().UTC()

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		rows := make([]CartItem, 0, len(items))
		for _, item := range items {
			rows = append(rows, CartItem{
				UserID:    userID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Title:     item.Title,
				Image:     item.Image,
				UpdatedAt: now,
			})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to write cart: %w", err)
		}

		return nil
	})
}

// GetItemCount returns the number of distinct cart lines
func (s *Service) GetItemCount(userID string) (int, error) {
	var count int64
	err := s.db.Model(&CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}
