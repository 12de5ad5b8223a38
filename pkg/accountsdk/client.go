package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is returned for any non-2xx response. The Message comes from the
// server's error body when one was sent.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("accountsdk: %d %s", e.StatusCode, e.Message)
}

// Client is a typed client for the accounts service HTTP API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a Client against the given base URL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, "/register", "",
		RegisterRequest{Username: username, Password: password}, &out)
	return out, err
}

// Login exchanges credentials for an identity token.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", "",
		LoginRequest{Username: username, Password: password}, &out)
	return out, err
}

// GetUser fetches the profile bound to the token.
func (c *Client) GetUser(ctx context.Context, token string) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodGet, "/getuser", token, nil, &out)
	return out, err
}

// Update applies the non-empty fields of req to the token's account.
func (c *Client) Update(ctx context.Context, token string, req UpdateRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPut, "/update", token, req, &out)
	return out, err
}

// Delete removes the token's account.
func (c *Client) Delete(ctx context.Context, token string) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodDelete, "/delete", token, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
