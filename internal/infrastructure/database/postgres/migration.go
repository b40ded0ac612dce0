// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/y-store/cabinet-backend/internal/domain/cart"
	"github.com/y-store/cabinet-backend/internal/domain/order"
	"github.com/y-store/cabinet-backend/internal/domain/product"
	"github.com/y-store/cabinet-backend/internal/domain/session"
	"github.com/y-store/cabinet-backend/internal/domain/user"
	"github.com/y-store/cabinet-backend/internal/domain/wishlist"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("Running database auto-migrations...")

	// Dependency order: base tables first
	models := []interface{}{
		// User + session domain
		&user.User{},
		&session.UserSession{},
		&session.GuestSession{},
		&session.PhoneOTP{},

		// Catalog domain
		&product.Category{},
		&product.Product{},

		// Cart domain
		&cart.CartItem{},

		// Order domain
		&order.Order{},
		&order.OrderItem{},
		&order.TTNTracking{},

		// Wishlist domain
		&wishlist.WishlistItem{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

		// Session indexes
		"CREATE INDEX IF NOT EXISTS idx_user_sessions_user ON user_sessions(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_guest_sessions_expires ON guest_sessions(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_phone_otps_phone_used ON phone_otps(phone, used)",

		// Catalog indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_categories_sort_order ON categories(sort_order)",

		// Cart indexes
		"CREATE INDEX IF NOT EXISTS idx_cart_items_user_product ON cart_items(user_id, product_id)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_buyer_created ON orders(buyer_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_delivery_ttn ON orders(delivery_ttn)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",

		// Wishlist indexes
		"CREATE INDEX IF NOT EXISTS idx_wishlist_items_user ON wishlist_items(user_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData seeds a development catalog and a demo account
func (m *Migration) SeedInitialData() error {
	if err := m.seedCatalog(); err != nil {
		return err
	}
	return m.seedDemoUser()
}

func (m *Migration) seedCatalog() error {
	var count int64
	if err := m.db.Model(&product.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding development catalog...")

	names := []string{
		"Smartphones", "Laptops", "Tablets", "Audio", "Wearables",
		"TV & Home", "Gaming", "Photo", "Accessories", "Smart Home",
	}

	categories := make([]product.Category, 0, len(names))
	for i, name := range names {
		categories = append(categories, product.Category{
			Name:      name,
			Slug:      fmt.Sprintf("category-%d", i+1),
			SortOrder: i,
		})
	}

	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	// 43 products spread across the categories, matching the dataset
	// the storefront frontend was built against.
	products := make([]product.Product, 0, 43)
	for i := 0; i < 43; i++ {
		cat := categories[i%len(categories)]
		products = append(products, product.Product{
			Title:      fmt.Sprintf("%s Item %d", cat.Name, i+1),
			Slug:       fmt.Sprintf("product-%d", i+1),
			Price:      decimal.NewFromInt(int64(199 + i*50)),
			Image:      fmt.Sprintf("/images/products/%d.jpg", i+1),
			CategoryID: cat.ID,
			IsActive:   true,
		})
	}

	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("Seeded %d categories and %d products", len(categories), len(products))
	return nil
}

func (m *Migration) seedDemoUser() error {
	var count int64
	if err := m.db.Model(&user.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Demo1234!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	demo := user.User{
		Email:        "demo@y-store.example",
		PasswordHash: string(hashed),
		FullName:     "Demo Buyer",
		Phone:        "+38 099 000 00 00",
		City:         "Kyiv",
	}

	if err := m.db.Create(&demo).Error; err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	log.Printf("Seeded demo user %s", demo.Email)
	return nil
}

// GetTableInfo logs row counts for the main tables
func (m *Migration) GetTableInfo() {
	tables := []string{
		"users", "user_sessions", "guest_sessions", "categories",
		"products", "cart_items", "orders", "order_items",
		"wishlist_items", "ttn_trackings",
	}

	for _, table := range tables {
		var count int64
		if err := m.db.Table(table).Count(&count).Error; err != nil {
			continue
		}
		log.Printf("Table %s: %d rows", table, count)
	}
}
