package handlers

import (
	"net/http"
	"time"

	"goldenbay/config"
	"goldenbay/models"
	"goldenbay/services/api"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the anonymous site surfaces: menu, news, VIP rooms,
// availability, language preference.
type PublicHandler struct {
	Client *api.Client
}

func NewPublicHandler(client *api.Client) *PublicHandler {
	return &PublicHandler{Client: client}
}

// MenuHandler returns the full menu grouped by category.
func (h *PublicHandler) MenuHandler(c *gin.Context) {
	menu, err := h.Client.GetMenu(c.Request.Context())
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// ListPostsHandler returns active posts, optionally filtered by ?type=.
func (h *PublicHandler) ListPostsHandler(c *gin.Context) {
	postType := c.Query("type")
	if postType != "" && postType != models.PostTypeBlog && postType != models.PostTypePromo {
		utils.JSONError(c, http.StatusBadRequest, "type must be BLOG or PROMO", postType)
		return
	}
	posts, err := h.Client.ListPosts(c.Request.Context(), postType)
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostHandler returns one post by slug. Unknown slugs render as an
// in-page not-found state rather than an error page.
func (h *PublicHandler) GetPostHandler(c *gin.Context) {
	post, err := h.Client.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if api.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"notFound": true, "message": "This story is no longer available"})
			return
		}
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// VIPRoomsHandler lists the private rooms for the rooms page.
func (h *PublicHandler) VIPRoomsHandler(c *gin.Context) {
	rooms, err := h.Client.ListVIPRooms(c.Request.Context())
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CheckAvailabilityHandler is the public date+session availability check.
func (h *PublicHandler) CheckAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	session := models.ServiceSession(c.Query("session"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be formatted YYYY-MM-DD", date)
		return
	}
	if !session.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "session must be LUNCH or DINNER", string(session))
		return
	}
	areas, err := h.Client.CheckAvailability(c.Request.Context(), date, session)
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

const languageCookieName = "siteLang"

var supportedLanguages = map[string]bool{
	"en": true, "zh": true, "zh_hant": true, "ja": true, "ko": true,
}

// GetLanguageHandler returns the visitor's stored language preference.
func (h *PublicHandler) GetLanguageHandler(c *gin.Context) {
	lang, err := c.Cookie(languageCookieName)
	if err != nil || !supportedLanguages[lang] {
		lang = "en"
	}
	c.JSON(http.StatusOK, gin.H{"language": lang})
}

// SetLanguageHandler stores the language preference in a cookie.
func (h *PublicHandler) SetLanguageHandler(c *gin.Context) {
	var input struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !supportedLanguages[input.Language] {
		utils.JSONError(c, http.StatusBadRequest, "unsupported language", input.Language)
		return
	}
	// A year, matching the browser-storage lifetime of the original site.
	c.SetCookie(languageCookieName, input.Language, 365*24*3600, "/", "", config.IsProduction(), false)
	c.JSON(http.StatusOK, gin.H{"language": input.Language})
}
