package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goldenbay/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func loginAttempt(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLoginRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.LoginAttemptsPerMin = 3

	r := gin.New()
	r.POST("/login", LoginRateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, loginAttempt(r, "203.0.113.7"))
	}
	assert.Equal(t, http.StatusTooManyRequests, loginAttempt(r, "203.0.113.7"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, loginAttempt(r, "203.0.113.8"))
}
