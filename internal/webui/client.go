package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blood_donor_system/internal/logger"
)

// Client is the page layer's wrapper around the REST backend. It forwards
// the browser's session cookie on every call and normalizes non-2xx
// responses into *APIError values the presenter can render.
type Client struct {
	baseURL string
	http    *http.Client
	cookies []*http.Cookie

	// Cookies the backend set during this request chain (e.g. the login
	// cookie), to be relayed back to the browser.
	received []*http.Cookie
}

// APIError is a non-2xx backend response: the status code plus the raw body.
type APIError struct {
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend responded %d", e.Status)
}

// NewClient builds a client for the given backend base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ForRequest derives a client that acts on behalf of the given browser
// request, carrying its cookies to the backend.
func (c *Client) ForRequest(r *http.Request) *Client {
	return &Client{
		baseURL: c.baseURL,
		http:    c.http,
		cookies: r.Cookies(),
	}
}

// ReceivedCookies returns the cookies the backend set during this request
// chain, in order. The page handler relays them to the browser.
func (c *Client) ReceivedCookies() []*http.Cookie {
	return c.received
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	for _, cookie := range c.received {
		req.AddCookie(cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Component("webui").WithError(err).Errorf("%s %s failed", method, path)
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.received = append(c.received, resp.Cookies()...)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: data}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response %s %s: %w", method, path, err)
		}
	}
	return nil
}

// Get performs a GET and decodes the success payload into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// GetBlob fetches a binary payload (file download). It returns the raw
// bytes and the response content type.
func (c *Client) GetBlob(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", err
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	for _, cookie := range c.received {
		req.AddCookie(cookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.received = append(c.received, resp.Cookies()...)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response GET %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &APIError{Status: resp.StatusCode, Body: data}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// IsUnauthorized reports whether err is a 401 backend response, which the
// profile loader treats as "not authenticated".
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}
