package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler proxies the aggregate stats for the staff dashboard.
func DashboardHandler(c *gin.Context) {
	client := apiClientFrom(c)
	dashboard, err := client.Dashboard(c.Request.Context())
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
