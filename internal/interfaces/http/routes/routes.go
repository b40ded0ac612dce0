// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/cart"
	"github.com/y-store/cabinet-backend/internal/domain/order"
	"github.com/y-store/cabinet-backend/internal/domain/session"
	"github.com/y-store/cabinet-backend/internal/domain/user"
	"github.com/y-store/cabinet-backend/internal/domain/wishlist"
	"github.com/y-store/cabinet-backend/internal/interfaces/http/handlers"
	"github.com/y-store/cabinet-backend/internal/interfaces/http/middleware"
	"github.com/y-store/cabinet-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires the v2 auth, catalog, and cabinet surfaces under
// the /api group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, cfg)
	SetupCatalogRoutes(rg, db, cfg)
	SetupCabinetRoutes(rg, db, cfg)
}

// SetupAuthRoutes sets up the v2 auth surface
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/v2/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", authHandler.Me)

		auth.POST("/guest", authHandler.CreateGuest)
		auth.GET("/guest/:guest_token", authHandler.GetGuest)
	}
}

// SetupCatalogRoutes sets up the public catalog reads
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	rg.GET("/products", catalogHandler.ListProducts)
	rg.GET("/categories", catalogHandler.ListCategories)
}

// SetupCabinetRoutes sets up the authenticated cabinet surface
func SetupCabinetRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	sessionService := session.NewService(db, cfg)
	userService := user.NewService(db, cfg)
	cartService := cart.NewService(db, cfg)
	orderService := order.NewService(db, cfg, cartService)
	wishlistService := wishlist.NewService(db, cfg)
	pdfService := pdf.NewService(cfg)

	profileHandler := handlers.NewCabinetProfileHandler(userService)
	orderHandler := handlers.NewCabinetOrderHandler(orderService, pdfService)
	wishlistHandler := handlers.NewCabinetWishlistHandler(wishlistService)

	cabinet := rg.Group("/v2/cabinet")
	cabinet.Use(middleware.SessionAuth(cfg, sessionService))
	{
		cabinet.GET("/profile", profileHandler.GetProfile)
		cabinet.PUT("/profile", profileHandler.UpdateProfile)

		cabinet.GET("/orders", orderHandler.ListOrders)
		cabinet.GET("/orders/:order_id", orderHandler.GetOrder)
		cabinet.POST("/orders/:order_id/repeat", orderHandler.RepeatOrder)
		cabinet.GET("/orders/:order_id/invoice", orderHandler.DownloadInvoice)

		cabinet.GET("/wishlist", wishlistHandler.GetWishlist)
		cabinet.POST("/wishlist/:product_id", wishlistHandler.AddToWishlist)
		cabinet.DELETE("/wishlist/:product_id", wishlistHandler.RemoveFromWishlist)
	}
}
