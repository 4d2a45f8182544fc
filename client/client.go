// Package client is the Go SDK for the job tracker API. GET responses are cached by
// URL and every mutation invalidates the cached reads it can affect.
package client

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
)

const apiPrefix = "/api/v1"

// Cache key prefixes invalidated after mutations.
const (
	PrefixApplications = apiPrefix + "/applications"
	PrefixInterviews   = apiPrefix + "/interviews"
	PrefixStats        = apiPrefix + "/dashboard/stats"
	PrefixActivity     = apiPrefix + "/activity-log"
)

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      Cache
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithCache replaces the default MemoryCache.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      NewMemoryCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CacheKey is the request path followed by its query string with keys sorted.
func CacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// Invalidate drops every cached read whose key starts with prefix.
func (c *Client) Invalidate(ctx context.Context, prefix string) error {
	return c.cache.DeletePrefix(ctx, prefix)
}

func (c *Client) invalidate(ctx context.Context, prefixes ...string) error {
	for _, p := range prefixes {
		if err := c.Invalidate(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// get serves from the cache when it can and stores fresh responses.
func (c *Client) get(ctx context.Context, path string, query url.Values, dest interface{}) error {
	key := CacheKey(path, query)
	if body, ok, err := c.cache.Get(ctx, key); err != nil {
		return err
	} else if ok {
		return json.Unmarshal(body, dest)
	}

	body, err := c.do(ctx, http.MethodGet, key, nil)
	if err != nil {
		return err
	}
	if err := c.cache.Set(ctx, key, body); err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}

// send performs a mutation and invalidates prefixes once it succeeded.
func (c *Client) send(ctx context.Context, method, path string, payload, dest interface{}, prefixes ...string) error {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if err := c.invalidate(ctx, prefixes...); err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	return json.Unmarshal(body, dest)
}

func (c *Client) do(ctx context.Context, method, target string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return nil, apiErr
	}
	return body, nil
}
