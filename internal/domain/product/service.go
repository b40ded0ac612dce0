// internal/domain/product/service.go
package product

import (
	"fmt"

	"github.com/y-store/cabinet-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog reads
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListProducts returns active catalog items, optionally filtered by category
func (s *Service) ListProducts(categoryID string) ([]Product, error) {
	query := s.db.Where("is_active = ?", true)
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	products := []Product{}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// ListCategories returns all categories in display order
func (s *Service) ListCategories() ([]Category, error) {
	categories := []Category{}
	if err := s.db.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// GetByIDs fetches products for a set of ids, capped at limit.
// Result order follows the database, not the input, and unknown ids
// are dropped silently.
func (s *Service) GetByIDs(ids []string, limit int) ([]Product, error) {
	products := []Product{}
	if len(ids) == 0 {
		return products, nil
	}

	if err := s.db.Where("id IN ?", ids).Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}
