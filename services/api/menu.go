package api

import (
	"context"
	"net/http"

	"goldenbay/models"
)

// GetMenu returns the full menu: categories in display order, each with its
// items sorted by kitchen code upstream.
func (c *Client) GetMenu(ctx context.Context) ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
