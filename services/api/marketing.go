package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"goldenbay/models"
)

// ListPosts returns active public posts, optionally filtered by type
// (PROMO or BLOG).
func (c *Client) ListPosts(ctx context.Context, postType string) ([]models.Post, error) {
	var query url.Values
	if postType != "" {
		query = url.Values{}
		query.Set("type", postType)
	}
	var posts []models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/api/marketing/", query, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single active post by slug. An unknown slug is an
// upstream 404; use IsNotFound to render an in-page not-found state.
func (c *Client) GetPost(ctx context.Context, slug string) (models.Post, error) {
	var post models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/api/marketing/"+url.PathEscape(slug)+"/", nil, nil, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ListManagedPosts returns every post, active or not, for the staff editor.
func (c *Client) ListManagedPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.doJSON(ctx, http.MethodGet, "/api/marketing/manage/all/", nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes a new marketing post.
func (c *Client) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var created models.Post
	if err := c.doJSON(ctx, http.MethodPost, "/api/marketing/manage/all/", nil, post, &created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

// UpdatePost patches an existing post.
func (c *Client) UpdatePost(ctx context.Context, id int, post models.Post) (models.Post, error) {
	var updated models.Post
	path := fmt.Sprintf("/api/marketing/manage/%d/", id)
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, post, &updated); err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/marketing/manage/%d/", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// CreatePostMultipart forwards a multipart post submission (fields plus image
// upload) to the backend verbatim. The backend owns media storage.
func (c *Client) CreatePostMultipart(ctx context.Context, body []byte, contentType string) (models.Post, error) {
	var created models.Post
	if err := c.do(ctx, http.MethodPost, "/api/marketing/manage/all/", nil, body, contentType, &created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

// UpdatePostMultipart forwards a multipart post update to the backend verbatim.
func (c *Client) UpdatePostMultipart(ctx context.Context, id int, body []byte, contentType string) (models.Post, error) {
	var updated models.Post
	path := fmt.Sprintf("/api/marketing/manage/%d/", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, body, contentType, &updated); err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

// SendBlast triggers an email campaign to the selected audience. The actual
// fan-out happens asynchronously upstream.
func (c *Client) SendBlast(ctx context.Context, blast models.BlastRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/marketing/manage/blast/", nil, blast, nil)
}
