package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"goldenbay/middleware"
	"goldenbay/models"
	"goldenbay/services/api"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
)

// apiClientFrom returns the token-bound API client placed in the context by
// the staff session middleware.
func apiClientFrom(c *gin.Context) *api.Client {
	value, ok := c.Get(middleware.CtxAPIClient)
	if !ok {
		return nil
	}
	client, _ := value.(*api.Client)
	return client
}

func staffSessionFrom(c *gin.Context) *models.StaffSession {
	value, ok := c.Get(middleware.CtxStaffSession)
	if !ok {
		return nil
	}
	session, _ := value.(*models.StaffSession)
	return session
}

// handleAPIError translates upstream failures into client responses. An
// unrecoverable token refresh ends the staff session: the cookie is dropped
// and the client is told to go back to login, exactly once.
func handleAPIError(c *gin.Context, err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please sign in again", "code": "SESSION_EXPIRED"})
		return
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		utils.JSONError(c, apiErr.StatusCode, apiErr.Message, apiErr.Details)
		return
	}
	utils.JSONError(c, http.StatusBadGateway, "The reservation system is temporarily unavailable", err.Error())
}

// confirmable is embedded in destructive request bodies. High-impact actions
// never reach the backend without an explicit confirmation.
type confirmable struct {
	Confirm bool `json:"confirm"`
}

func requireConfirm(c *gin.Context, confirmed bool) bool {
	if !confirmed {
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "This action requires confirmation", "code": "CONFIRM_REQUIRED"})
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id", c.Param(name))
		return 0, false
	}
	return id, true
}
