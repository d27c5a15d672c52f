package api

import (
	"context"
	"fmt"
	"net/http"

	"goldenbay/models"
)

// Login exchanges staff credentials for an access/refresh pair. The caller
// decides where the pair is stored; Login itself never touches a TokenStore.
func (c *Client) Login(ctx context.Context, username, password string) (models.Tokens, error) {
	body := map[string]string{"username": username, "password": password}

	var tokens models.Tokens
	if err := c.doJSON(ctx, http.MethodPost, "/api/token/", nil, body, &tokens); err != nil {
		return models.Tokens{}, err
	}
	if tokens.Access == "" || tokens.Refresh == "" {
		return models.Tokens{}, fmt.Errorf("token response missing access or refresh token")
	}
	return tokens, nil
}
