// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/session"
	"github.com/y-store/cabinet-backend/internal/domain/user"
	"github.com/y-store/cabinet-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// AuthHandler handles the v2 auth surface: account login/registration,
// guest checkout sessions, and token refresh.
type AuthHandler struct {
	userService    *user.Service
	sessionService *session.Service
	config         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:    user.NewService(db, cfg),
		sessionService: session.NewService(db, cfg),
		config:         cfg,
	}
}

// Register handles POST /v2/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.userService.Register(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.openCabinetSession(c, response.User.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /v2/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	response, err := h.userService.Login(&req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.openCabinetSession(c, response.User.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// RefreshToken handles POST /v2/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	response, err := h.userService.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout handles POST /v2/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractSessionToken(c, h.config.Session.CookieName)
	if err := h.sessionService.Delete(token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.SetCookie(h.config.Session.CookieName, "", -1, "/", "", h.config.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// Me handles GET /v2/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	token := middleware.ExtractSessionToken(c, h.config.Session.CookieName)

	account, err := h.sessionService.Resolve(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, account)
}

// CreateGuest handles POST /v2/auth/guest
func (h *AuthHandler) CreateGuest(c *gin.Context) {
	var req session.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	guest, err := h.sessionService.CreateGuest(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
		return
	}

	c.JSON(http.StatusOK, session.GuestResponse{
		GuestToken: guest.GuestToken,
		GuestID:    guest.GuestID,
	})
}

// GetGuest handles GET /v2/auth/guest/:guest_token
func (h *AuthHandler) GetGuest(c *gin.Context) {
	guest, err := h.sessionService.GetGuest(c.Param("guest_token"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, guest)
}

// openCabinetSession creates a session row and sets the cabinet cookie
func (h *AuthHandler) openCabinetSession(c *gin.Context, userID string) error {
	sess, err := h.sessionService.Create(userID)
	if err != nil {
		return err
	}

	c.SetCookie(
		h.config.Session.CookieName,
		sess.SessionToken,
		int(h.config.Session.CookieMaxAge.Seconds()),
		"/",
		"",
		h.config.IsProduction(),
		true,
	)

	return nil
}
