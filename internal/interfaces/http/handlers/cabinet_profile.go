// internal/interfaces/http/handlers/cabinet_profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/y-store/cabinet-backend/internal/domain/user"
	"github.com/y-store/cabinet-backend/internal/interfaces/http/middleware"
)

// ProfileService is the profile surface the handler needs
type ProfileService interface {
	UpdateProfile(userID string, req *user.UpdateProfileRequest) (*user.User, error)
}

// CabinetProfileHandler handles cabinet profile endpoints
type CabinetProfileHandler struct {
	profiles ProfileService
}

// NewCabinetProfileHandler creates a new cabinet profile handler
func NewCabinetProfileHandler(profiles ProfileService) *CabinetProfileHandler {
	return &CabinetProfileHandler{
		profiles: profiles,
	}
}

// GetProfile handles GET /v2/cabinet/profile.
// The session middleware already resolved and sanitized the account,
// so it is returned as is.
func (h *CabinetProfileHandler) GetProfile(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	c.JSON(http.StatusOK, account)
}

// UpdateProfile handles PUT /v2/cabinet/profile
func (h *CabinetProfileHandler) UpdateProfile(c *gin.Context) {
	account, exists := middleware.GetAccountFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	updated, err := h.profiles.UpdateProfile(account.ID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
