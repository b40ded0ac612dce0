// internal/interfaces/http/middleware/auth_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-store/cabinet-backend/internal/config"
	"github.com/y-store/cabinet-backend/internal/domain/session"
	"github.com/y-store/cabinet-backend/internal/domain/user"
)

type stubResolver struct {
	accounts map[string]*user.User
	err      error
	seen     string
}

func (s *stubResolver) Resolve(token string) (*user.User, error) {
	s.seen = token
	if s.err != nil {
		return nil, s.err
	}
	account, ok := s.accounts[token]
	if !ok {
		if token == "" {
			return nil, session.ErrUnauthenticated
		}
		return nil, session.ErrInvalidSession
	}
	return account, nil
}

func sessionTestConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			CookieName: "session_token",
		},
	}
}

func newAuthTestRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", SessionAuth(sessionTestConfig(), resolver), func(c *gin.Context) {
		account, ok := GetAccountFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no account in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": account.ID})
	})

	return router
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error
}

func TestSessionAuth_ResolvesCookieToken(t *testing.T) {
	resolver := &stubResolver{
		accounts: map[string]*user.User{
			"tok-1": {ID: "user-1"},
		},
	}
	router := newAuthTestRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-1", resolver.seen)
}

func TestSessionAuth_FallsBackToBearerHeader(t *testing.T) {
	resolver := &stubResolver{
		accounts: map[string]*user.User{
			"tok-2": {ID: "user-2"},
		},
	}
	router := newAuthTestRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok-2")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-2", resolver.seen)
}

func TestSessionAuth_CookieWinsOverHeader(t *testing.T) {
	resolver := &stubResolver{
		accounts: map[string]*user.User{
			"cookie-tok": {ID: "user-1"},
			"header-tok": {ID: "user-2"},
		},
	}
	router := newAuthTestRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-tok"})
	req.Header.Set("Authorization", "Bearer header-tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie-tok", resolver.seen)
}

func TestSessionAuth_NoCredential(t *testing.T) {
	resolver := &stubResolver{}
	router := newAuthTestRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", errorMessage(t, rec.Body.Bytes()))
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	resolver := &stubResolver{}
	router := newAuthTestRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "stale"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid session", errorMessage(t, rec.Body.Bytes()))
}

func TestSessionAuth_AccountGone(t *testing.T) {
	resolver := &stubResolver{err: session.ErrAccountNotFound}
	router := newAuthTestRouter(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "orphaned"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec.Body.Bytes()))
}

func TestExtractSessionToken_IgnoresEmptyCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: ""})
	c.Request.Header.Set("Authorization", "Bearer header-tok")

	assert.Equal(t, "header-tok", ExtractSessionToken(c, "session_token"))
}
