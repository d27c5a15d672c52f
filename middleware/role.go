package middleware

import (
	"net/http"

	"goldenbay/models"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to the given staff roles. The role comes from an
// unverified decode of the upstream access token, so this is a UX affordance
// only; the backend re-checks permissions on every proxied call.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(CtxStaffSession)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			return
		}
		session, ok := value.(*models.StaffSession)
		if !ok || !utils.RoleAllows(session.Role, allowed...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission for this action"})
			return
		}
		c.Next()
	}
}
