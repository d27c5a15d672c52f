package handlers

import (
	"context"
	"net/http"
	"time"

	"goldenbay/config"
	"goldenbay/middleware"
	"goldenbay/models"
	"goldenbay/services/api"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthHandler signs staff in and out. Tokens from the upstream live only in
// Redis; the browser gets an opaque HTTP-only cookie.
type AuthHandler struct {
	Client   *api.Client
	Sessions *redis.Client
	TTL      time.Duration
	Logger   *zap.Logger
}

func NewAuthHandler(client *api.Client, sessions *redis.Client, ttl time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Client: client, Sessions: sessions, TTL: ttl, Logger: logger}
}

// LoginHandler exchanges credentials upstream and opens a staff session.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Username and password are required", err.Error())
		return
	}

	tokens, err := h.Client.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		handleAPIError(c, err)
		return
	}

	claims, err := utils.DecodeStaffClaims(tokens.Access)
	if err != nil {
		h.Logger.Warn("could not decode access token claims", zap.Error(err))
		claims = utils.StaffClaims{Username: input.Username, Role: utils.DefaultRole}
	}
	if claims.Username == "" {
		claims.Username = input.Username
	}

	sessionID := uuid.New().String()
	session := models.StaffSession{
		ID:        sessionID,
		Username:  claims.Username,
		Role:      claims.Role,
		CreatedAt: time.Now(),
	}
	if err := utils.SaveStaffSession(h.Sessions, session, h.TTL); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to open session", err.Error())
		return
	}
	store := api.NewRedisTokenStore(h.Sessions, sessionID, h.TTL)
	if err := store.Set(c.Request.Context(), tokens); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to open session", err.Error())
		return
	}

	c.SetCookie(middleware.SessionCookieName, sessionID, int(h.TTL.Seconds()), "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"username": session.Username, "role": session.Role})
}

// LogoutHandler closes the staff session and drops its tokens.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	sessionID, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && sessionID != "" {
		if err := utils.DeleteStaffSession(h.Sessions, sessionID); err != nil {
			h.Logger.Warn("failed to delete staff session", zap.Error(err))
		}
		store := api.NewRedisTokenStore(h.Sessions, sessionID, h.TTL)
		if err := store.Clear(context.Background()); err != nil {
			h.Logger.Warn("failed to clear session tokens", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// MeHandler reports who is signed in, for UI chrome.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	session := staffSessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": session.Username, "role": session.Role})
}
