// internal/interfaces/http/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/y-store/cabinet-backend/internal/config"
)

func TestRateLimit_FailsOpenWhenRedisUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Nothing listens on this address, so every Redis call errors out.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		ReadTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})

	cfg := &config.Config{
		Security: config.SecurityConfig{RateLimitPerMinute: 1},
	}

	router := gin.New()
	router.Use(RateLimit(cfg, client))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
