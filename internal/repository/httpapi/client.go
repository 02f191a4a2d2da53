// Package httpapi implements the persistence gateway interfaces over the
// hosted REST API, for engine sessions running outside the serving process.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"lipi/internal/domain"
)

// Client calls the hosted API with a bearer session token. It implements
// all four gateway interfaces.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an API client. token is the user's session JWT.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// problemDetail mirrors the server's RFC 7807 error body.
type problemDetail struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil). Non-2xx responses are mapped
// onto the domain error taxonomy.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(method, path, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse maps an error response onto the domain taxonomy so
// errors.Is checks work the same against either gateway implementation.
func (c *Client) errorFromResponse(method, path string, resp *http.Response) error {
	var problem problemDetail
	detail := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil && problem.Detail != "" {
		detail = problem.Detail
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrNotFound)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrForbidden)
	case http.StatusConflict:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrConflict)
	case http.StatusBadRequest:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrValidation)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrQuotaExceeded)
	default:
		return fmt.Errorf("%s %s: %s: %w", method, path, detail, domain.ErrPersistence)
	}
}
