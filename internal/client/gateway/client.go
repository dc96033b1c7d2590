// Package gateway is the remote data gateway for the admin console and
// storefront: it maps logical reads and writes onto the platform REST
// API, attaches the bearer credential, normalizes identifiers, and keeps
// a tag-invalidated response cache so a successful write is visible to
// the next read.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/addiskitchen/platform/pkg/logger"
)

// TokenStore supplies and clears the persisted bearer credential
type TokenStore interface {
	// Token returns the stored credential, "" when signed out
	Token() string
	// Clear forgets the stored credential
	Clear() error
}

// APIError is a non-success response from the platform API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsAuthError reports whether err is a 401/403 from the API
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// Config holds gateway settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client issues HTTP calls against the platform API
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	cache   *Cache
	log     *logger.Logger

	// onSessionExpired fires after a 401/403 on an authenticated
	// route has cleared the credential
	onSessionExpired func()
}

// NewClient creates a gateway client. cache may be shared across
// resources; tests pass their own instance.
func NewClient(cfg Config, tokens TokenStore, cache *Cache) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		cache:   cache,
		log:     logger.Get(),
	}
}

// OnSessionExpired registers the handler invoked when the stored
// credential is rejected by the server.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// Cache exposes the underlying cache, mainly for logout flows
func (c *Client) Cache() *Cache {
	return c.cache
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do executes one request and returns the normalized data payload
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// A missing token is not an error: the request proceeds
	// unauthenticated and the server decides.
	authenticated := false
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		authenticated = true
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: "malformed response body"}
		}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		if authenticated {
			c.expireSession()
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageOr(env.Message, "not authorized")}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: messageOr(env.Message, "request failed")}
	}

	return normalizeIDs(env.Data)
}

// getCached serves a read from the cache when possible, storing a miss
// under its dependency tags.
func (c *Client) getCached(ctx context.Context, path string, query url.Values, tags ...Tag) (json.RawMessage, error) {
	key := cacheKey(path, query)
	if body, ok := c.cache.Get(key); ok {
		return body, nil
	}

	data, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	c.cache.Put(key, data, tags...)
	return data, nil
}

// mutate executes a write and invalidates the given tags on success
func (c *Client) mutate(ctx context.Context, method, path string, query url.Values, body interface{}, invalidates ...Tag) (json.RawMessage, error) {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(invalidates...)
	return data, nil
}

func (c *Client) expireSession() {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn("failed to clear stored credential", zap.Error(err))
	}
	c.cache.Clear()
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
