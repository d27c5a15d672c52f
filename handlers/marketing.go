package handlers

import (
	"io"
	"net/http"
	"strings"

	"goldenbay/models"
	"goldenbay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Post submissions carrying an image come in as multipart and are forwarded
// verbatim; the backend owns media storage and validation.
const maxUploadBytes = 10 << 20

// MarketingHandler backs the staff post editor and the campaign blast.
type MarketingHandler struct {
	Logger *zap.Logger
}

func NewMarketingHandler(logger *zap.Logger) *MarketingHandler {
	return &MarketingHandler{Logger: logger}
}

func (h *MarketingHandler) ListManagedPostsHandler(c *gin.Context) {
	client := apiClientFrom(c)
	posts, err := client.ListManagedPosts(c.Request.Context())
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func readUpload(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read upload", err.Error())
		return nil, false
	}
	return body, true
}

func (h *MarketingHandler) CreatePostHandler(c *gin.Context) {
	if isMultipart(c) {
		body, ok := readUpload(c)
		if !ok {
			return
		}
		client := apiClientFrom(c)
		created, err := client.CreatePostMultipart(c.Request.Context(), body, c.GetHeader("Content-Type"))
		if err != nil {
			handleAPIError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
		return
	}

	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if post.Title == "" || post.Slug == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Title and slug are required"})
		return
	}
	if post.Type != models.PostTypeBlog && post.Type != models.PostTypePromo {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Type must be BLOG or PROMO"})
		return
	}

	client := apiClientFrom(c)
	created, err := client.CreatePost(c.Request.Context(), post)
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *MarketingHandler) UpdatePostHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if isMultipart(c) {
		body, ok := readUpload(c)
		if !ok {
			return
		}
		client := apiClientFrom(c)
		updated, err := client.UpdatePostMultipart(c.Request.Context(), id, body, c.GetHeader("Content-Type"))
		if err != nil {
			handleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
		return
	}

	var post models.Post
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	client := apiClientFrom(c)
	updated, err := client.UpdatePost(c.Request.Context(), id, post)
	if err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *MarketingHandler) DeletePostHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input confirmable
	_ = c.ShouldBindJSON(&input)
	if !requireConfirm(c, input.Confirm) {
		return
	}

	client := apiClientFrom(c)
	if err := client.DeletePost(c.Request.Context(), id); err != nil {
		handleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SendBlastHandler triggers a mass email campaign. High-impact: requires
// explicit confirmation before anything reaches the backend.
func (h *MarketingHandler) SendBlastHandler(c *gin.Context) {
	var input struct {
		models.BlastRequest
		confirmable
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Audience != models.AudienceAll && input.Audience != models.AudienceVIP && input.Audience != models.AudienceInactive {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Audience must be ALL, VIP or INACTIVE"})
		return
	}
	if input.Subject == "" || input.HTML == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Subject and content are required"})
		return
	}
	if !requireConfirm(c, input.Confirm) {
		return
	}

	client := apiClientFrom(c)
	if err := client.SendBlast(c.Request.Context(), input.BlastRequest); err != nil {
		handleAPIError(c, err)
		return
	}
	h.Logger.Info("campaign blast queued", zap.String("audience", input.Audience))
	c.JSON(http.StatusOK, gin.H{"status": "queued"})
}
