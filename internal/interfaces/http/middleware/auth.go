// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/session"
	"github.com/y-store/cabinet-backend/internal/domain/user"
	"github.com/y-store/cabinet-backend/internal/pkg/auth"
)

const accountContextKey = "account"

// SessionResolver resolves a session credential to an account
type SessionResolver interface {
	Resolve(token string) (*user.User, error)
}

// SessionAuth authenticates requests against the session store. The
// credential comes from the session cookie, falling back to a bearer
// Authorization header; the cookie wins when both are present.
func SessionAuth(cfg *config.Config, resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c, cfg.Session.CookieName)

		account, err := resolver.Resolve(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": authErrorMessage(err),
			})
			c.Abort()
			return
		}

		c.Set(accountContextKey, account)
		c.Next()
	}
}

// ExtractSessionToken pulls the session credential from a request
func ExtractSessionToken(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	return auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
}

// GetAccountFromContext returns the resolved account for the request
func GetAccountFromContext(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(accountContextKey)
	if !exists {
		return nil, false
	}
	account, ok := value.(*user.User)
	return account, ok
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidSession):
		return "Invalid session"
	case errors.Is(err, session.ErrAccountNotFound):
		return "User not found"
	default:
		return "Unauthorized"
	}
}
