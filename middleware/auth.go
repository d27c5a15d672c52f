// File: middleware/auth.go
package middleware

import (
	"net/http"
	"time"

	"goldenbay/services/api"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SessionCookieName is the browser cookie carrying the opaque staff session
// ID. Upstream tokens never reach the browser.
const SessionCookieName = "gb_session"

// Context keys set by StaffSessionMiddleware.
const (
	CtxAPIClient    = "apiClient"
	CtxStaffSession = "staffSession"
	CtxSessionID    = "sessionID"
)

// StaffSessionMiddleware resolves the session cookie to a staff session and
// binds a token-carrying API client into the request context. Requests with
// no live session are rejected before anything reaches the backend.
func StaffSessionMiddleware(sessions *redis.Client, client *api.Client, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			return
		}

		session, err := utils.GetStaffSession(sessions, sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again"})
			return
		}

		store := api.NewRedisTokenStore(sessions, sessionID, tokenTTL)
		c.Set(CtxAPIClient, client.WithTokens(store))
		c.Set(CtxStaffSession, session)
		c.Set(CtxSessionID, sessionID)
		c.Next()
	}
}
