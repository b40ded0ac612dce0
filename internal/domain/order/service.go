// internal/domain/order/service.go
package order

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/cart"
	"gorm.io/gorm"
)

var (
	// ErrOrderNotFound is returned when no order matches the requested id
	ErrOrderNotFound = errors.New("order not found")
	// ErrAccessDenied is returned when the caller does not own the order
	ErrAccessDenied = errors.New("access denied")
)

// Service handles order business logic
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
	}
}

// OrderListResponse represents a page of the buyer's order history
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
}

// OrderDetail is an order augmented with courier tracking when the
// shipment carries a tracking number
type OrderDetail struct {
	Order
	Tracking *TTNTracking `json:"tracking,omitempty"`
}

// MarshalJSON keeps the tracking key tied to the shipment, not the
// lookup: an order with a TTN always carries the key, null when no
// tracking record exists yet. Orders without a TTN omit it.
func (d OrderDetail) MarshalJSON() ([]byte, error) {
	type plain OrderDetail

	if d.Delivery.TTN == "" {
		return json.Marshal(plain(d))
	}

	return json.Marshal(struct {
		plain
		Tracking *TTNTracking `json:"tracking"`
	}{plain(d), d.Tracking})
}

// RepeatResult reports the cart state after a repeat-order merge
type RepeatResult struct {
	ItemsCount int `json:"items_count"`
}

// PageCount computes the number of pages: floor division with a +1
// correction when there is a remainder.
func PageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// ListOrders returns the buyer's orders, newest first. Page and limit
// are taken as given; the skip is (page-1)*limit without correction.
func (s *Service) ListOrders(buyerID string, page, limit int) (*OrderListResponse, error) {
	skip := (page - 1) * limit

	orders := []Order{}
	err := s.db.Where("buyer_id = ?", buyerID).
		Preload("Items").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var total int64
	if err := s.db.Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	return &OrderListResponse{
		Orders: orders,
		Total:  total,
		Page:   page,
		Pages:  PageCount(total, limit),
	}, nil
}

// GetOrder returns one order with its courier tracking. Existence is
// checked before ownership, so a foreign order id yields ErrAccessDenied
// rather than ErrOrderNotFound.
func (s *Service) GetOrder(buyerID, orderID string) (*OrderDetail, error) {
	ord, err := s.loadOwnedOrder(buyerID, orderID)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{Order: *ord}

	if ord.Delivery.TTN != "" {
		var tracking TTNTracking
		result := s.db.Where("ttn = ?", ord.Delivery.TTN).First(&tracking)
		if result.Error == nil {
			detail.Tracking = &tracking
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up tracking: %w", result.Error)
		}
	}

	return detail, nil
}

// RepeatOrder merges a past order's items into the caller's cart and
// returns the resulting number of cart lines.
func (s *Service) RepeatOrder(buyerID, orderID string) (*RepeatResult, error) {
	ord, err := s.loadOwnedOrder(buyerID, orderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartService.GetItems(buyerID)
	if err != nil {
		return nil, err
	}

	incoming := make([]cart.CartItem, 0, len(ord.Items))
	for _, item := range ord.Items {
		incoming = append(incoming, cart.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Title:     item.Title,
			Image:     item.Image,
		})
	}

	merged := cart.MergeItems(existing, incoming)

	if err := s.cartService.ReplaceItems(buyerID, merged); err != nil {
		return nil, err
	}

	return &RepeatResult{ItemsCount: len(merged)}, nil
}

func (s *Service) loadOwnedOrder(buyerID, orderID string) (*Order, error) {
	var ord Order
	result := s.db.Where("id = ?", orderID).Preload("Items").First(&ord)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", result.Error)
	}

	if ord.BuyerID != buyerID {
		return nil, ErrAccessDenied
	}

	return &ord, nil
}
