// Package api is the HTTP client for the donation platform backend.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dami/hope/internal/session"
)

// Sentinel errors for common HTTP error classes.
var (
	// ErrSessionExpired is returned for any 401 response. By the time the
	// caller sees it the stored session has already been purged; the command
	// layer tells the user to log in again.
	ErrSessionExpired = errors.New("session expired")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
)

// Client is an HTTP client for the donation platform API.
type Client struct {
	BaseURL string
	Session *session.Store
	HTTP    *http.Client
}

// New creates a new API client. The session store is injected so every
// credential read is explicit; nil means no session (public access only).
func New(baseURL string, sess *session.Store, httpClient *http.Client) *Client {
	if sess == nil {
		sess = &session.Store{}
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		BaseURL: baseURL,
		Session: sess,
		HTTP:    httpClient,
	}
}

// do executes a request against an endpoint that requires authentication.
func (c *Client) do(method, path string, body, result any) error {
	return c.doRequest(method, path, body, result, true)
}

// doNoAuth executes a request against a public endpoint. A stored token is
// still attached when present, preserving the backend's observed contract,
// but its absence is not an error.
func (c *Client) doNoAuth(method, path string, body, result any) error {
	return c.doRequest(method, path, body, result, false)
}

func (c *Client) doRequest(method, path string, body, result any, requiresAuth bool) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := c.Session.Token()
	if requiresAuth && token == "" {
		return fmt.Errorf("%w: not logged in", ErrSessionExpired)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, result)
}

// send executes a prepared request and decodes the JSON response. All
// cross-cutting response handling (401 purge, error decoding) lives here so
// JSON and multipart requests behave identically.
func (c *Client) send(req *http.Request, result any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}

// errorFromResponse maps an error response to a typed error. A 401 from any
// endpoint purges the stored session first.
func (c *Client) errorFromResponse(status int, body []byte) error {
	apiErr := decodeAPIError(status, body)

	switch status {
	case http.StatusUnauthorized:
		_ = c.Session.Clear()
		return fmt.Errorf("%w: %s", ErrSessionExpired, apiErr.Message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, apiErr.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
	default:
		return apiErr
	}
}
