package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goldenbay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(session *models.StaffSession) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if session != nil {
			c.Set(CtxStaffSession, session)
		}
	})
	r.DELETE("/admin-only", RequireRole("Admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hitAdminOnly(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin-only", nil))
	return w.Code
}

func TestRequireRole(t *testing.T) {
	assert.Equal(t, http.StatusOK,
		hitAdminOnly(roleRouter(&models.StaffSession{Username: "a", Role: "Admin"})))
	assert.Equal(t, http.StatusForbidden,
		hitAdminOnly(roleRouter(&models.StaffSession{Username: "r", Role: "Receptionist"})))
	assert.Equal(t, http.StatusUnauthorized, hitAdminOnly(roleRouter(nil)))
}
