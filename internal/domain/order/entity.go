// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents the order entity. Orders are created at checkout and
// are read-only from the cabinet's point of view.
type Order struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber string          `gorm:"uniqueIndex;size:50" json:"order_number"`
	BuyerID     string          `gorm:"not null;index;size:36" json:"buyer_id"`
	Status      OrderStatus     `gorm:"not null;default:'pending';size:32" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_amount"`
	Delivery    Delivery        `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Delivery holds shipment details captured at checkout
type Delivery struct {
	Method     string `gorm:"size:50" json:"method"`
	City       string `gorm:"size:100" json:"city"`
	Department string `gorm:"size:100" json:"department"`
	TTN        string `gorm:"size:50" json:"ttn"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"not null;index;size:36" json:"order_id"`
	ProductID string          `gorm:"not null;index;size:36" json:"product_id"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`
	Title     string          `gorm:"size:255" json:"title"`
	Image     string          `gorm:"size:500" json:"image"`
	CreatedAt time.Time       `json:"created_at"`
}

// TTNTracking mirrors the courier's status for a tracking number
type TTNTracking struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	TTN           string    `gorm:"uniqueIndex;not null;size:50" json:"ttn"`
	Status        string    `gorm:"size:100" json:"status"`
	StatusCode    string    `gorm:"size:20" json:"status_code"`
	City          string    `gorm:"size:100" json:"city"`
	Warehouse     string    `gorm:"size:255" json:"warehouse"`
	ScheduledDate string    `gorm:"size:50" json:"scheduled_date"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// TableName overrides the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// TableName overrides the table name
func (TTNTracking) TableName() string {
	return "ttn_trackings"
}

// BeforeCreate assigns an id when none is set
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
