// Package api is the typed client for the upstream restaurant backend. All
// persistence, availability computation and email live upstream; this client
// attaches bearer credentials and recovers transparently from a single
// expired-access-token condition per request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Response bodies larger than this are considered malformed.
const maxResponseBytes = 8 << 20

// Client talks to the upstream REST backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  *zap.Logger
}

// New returns an anonymous client (no token store bound).
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// WithTokens returns a copy of the client bound to a per-session token store.
// Requests made through the copy carry that session's bearer token.
func (c *Client) WithTokens(store TokenStore) *Client {
	bound := *c
	bound.tokens = store
	return &bound
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}
	return c.do(ctx, method, path, query, payload, "application/json", out)
}

// do executes one request against the backend. On a 401 for a token-bound
// client it exchanges the refresh token for a new access token and replays
// the original request exactly once; a replayed request that fails again
// surfaces the failure. Callers never observe an intermediate 401.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte, contentType string, out interface{}) error {
	retried := false
	for {
		req, err := c.newRequest(ctx, method, path, query, payload, contentType)
		if err != nil {
			return err
		}
		if err := c.attachToken(ctx, req); err != nil {
			return err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("backend request failed: %w", err)
		}
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		resp.Body.Close()
		if readErr != nil {
			return fmt.Errorf("failed to read backend response: %w", readErr)
		}

		if resp.StatusCode == http.StatusUnauthorized && c.tokens != nil && !retried {
			retried = true
			if err := c.refreshTokens(ctx); err != nil {
				return err
			}
			continue
		}
		if resp.StatusCode >= 400 {
			return newError(resp.StatusCode, respBody)
		}
		if out != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("malformed backend response: %w", err)
			}
		}
		return nil
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, payload []byte, contentType string) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var body io.Reader
	if len(payload) > 0 {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	if len(payload) > 0 {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (c *Client) attachToken(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	tokens, err := c.tokens.Get(ctx)
	if err == ErrNoTokens {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load session tokens: %w", err)
	}
	if tokens.Access != "" {
		req.Header.Set("Authorization", "Bearer "+tokens.Access)
	}
	return nil
}

// refreshTokens performs the single refresh attempt. Refresh-endpoint network
// errors are treated identically to refresh rejection: the session is cleared
// and the caller gets ErrSessionExpired.
func (c *Client) refreshTokens(ctx context.Context) error {
	tokens, err := c.tokens.Get(ctx)
	if err != nil || tokens.Refresh == "" {
		_ = c.tokens.Clear(ctx)
		return ErrSessionExpired
	}

	access, err := c.refresh(ctx, tokens.Refresh)
	if err != nil {
		c.logger.Warn("token refresh failed, forcing logout", zap.Error(err))
		_ = c.tokens.Clear(ctx)
		return ErrSessionExpired
	}

	tokens.Access = access
	if err := c.tokens.Set(ctx, tokens); err != nil {
		return fmt.Errorf("failed to persist refreshed token: %w", err)
	}
	return nil
}

// refresh exchanges the refresh token for a new access token. It bypasses
// do() so a failing refresh can never recurse into another refresh.
func (c *Client) refresh(ctx context.Context, refreshToken string) (string, error) {
	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", fmt.Errorf("failed to marshal refresh request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/token/refresh/", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read refresh response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", newError(resp.StatusCode, body)
	}

	var parsed struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("malformed refresh response: %w", err)
	}
	if parsed.Access == "" {
		return "", fmt.Errorf("refresh response missing access token")
	}
	return parsed.Access, nil
}
