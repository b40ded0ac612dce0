// internal/interfaces/http/handlers/cabinet_wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/y-store/cabinet-backend/internal/domain/wishlist"
	"github.com/y-store/cabinet-backend/internal/interfaces/http/middleware"
)

// WishlistService is the wishlist surface the handler needs
type WishlistService interface {
	GetWishlist(userID string) (*wishlist.WishlistResponse, error)
	Add(userID, productID string) error
	Remove(userID, productID string) error
}

// CabinetWishlistHandler handles cabinet wishlist endpoints
type CabinetWishlistHandler struct {
	wishlists WishlistService
}

// NewCabinetWishlistHandler creates a new cabinet wishlist handler
func NewCabinetWishlistHandler(wishlists WishlistService) *CabinetWishlistHandler {
	return &CabinetWishlistHandler{
		wishlists: wishlists,
	}
}

// GetWishlist handles GET /v2/cabinet/wishlist
func (h *CabinetWishlistHandler) GetWishlist(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	response, err := h.wishlists.GetWishlist(account.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// AddToWishlist handles POST /v2/cabinet/wishlist/:product_id
func (h *CabinetWishlistHandler) AddToWishlist(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.wishlists.Add(account.ID, c.Param("product_id")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Added to wishlist",
	})
}

// RemoveFromWishlist handles DELETE /v2/cabinet/wishlist/:product_id
func (h *CabinetWishlistHandler) RemoveFromWishlist(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.wishlists.Remove(account.ID, c.Param("product_id")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from wishlist",
	})
}
