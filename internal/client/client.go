// Package client is the HTTP adapter every API module goes through. It owns
// the base URL, bearer token injection and JSON encoding, and turns non-2xx
// responses into *APIError values.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TokenSource supplies the bearer token attached to each request. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL   string
	tokens    TokenSource
	timeout   time.Duration
	userAgent string
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokens:    tokens,
		timeout:   15 * time.Second,
		userAgent: "quittance-client",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Get(path string, query url.Values, out any) error {
	return c.do(fiber.MethodGet, path, query, nil, out)
}

func (c *Client) Post(path string, body, out any) error {
	return c.do(fiber.MethodPost, path, nil, body, out)
}

func (c *Client) Put(path string, body, out any) error {
	return c.do(fiber.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(path string) error {
	return c.do(fiber.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(method, path string, query url.Values, body, out any) error {
	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	a.Set(fiber.HeaderUserAgent, c.userAgent)
	if token := c.token(); token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if c.timeout > 0 {
		a.Timeout(c.timeout)
	}
	if body != nil {
		a.JSON(body)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	// Bytes releases the agent.
	status, respBody, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return newAPIError(method, path, status, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}
