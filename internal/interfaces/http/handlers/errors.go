// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/y-store/cabinet-backend/internal/domain/order"
	"github.com/y-store/cabinet-backend/internal/domain/session"
	"github.com/y-store/cabinet-backend/internal/domain/user"
)

// respondDomainError maps domain sentinel errors onto HTTP statuses:
// missing resources are 404, ownership violations 403, everything
// else a 500 with a generic message.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, order.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, session.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest session not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
