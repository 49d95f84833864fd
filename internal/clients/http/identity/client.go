package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrClientNotFound is returned when the identity service does not know the cpf.
var ErrClientNotFound = errors.New("identity client not found")

// StatusError reports a non-success answer from the identity service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("identity service responded %d: %s", e.StatusCode, e.Body)
}

// Client wraps APIClient with typed helpers.
type Client struct {
	api *APIClient
}

// NewIdentityClient instantiates the identity client with sane defaults.
func NewIdentityClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("identity base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	api, err := NewAPIClient(baseURL, WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("build identity client: %w", err)
	}
	return &Client{api: api}, nil
}

// CreateUser registers a client and returns it with the id assigned by the identity service.
func (c *Client) CreateUser(ctx context.Context, payload ClientPayload) (*ClientPayload, error) {
	if c == nil || c.api == nil {
		return nil, errors.New("identity client not configured")
	}
	resp, err := c.api.CreateClient(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("call identity API: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return decodeClient(resp.Body)
}

// GetUserByCPF loads a client by cpf.
func (c *Client) GetUserByCPF(ctx context.Context, cpf string) (*ClientPayload, error) {
	if c == nil || c.api == nil {
		return nil, errors.New("identity client not configured")
	}
	resp, err := c.api.GetClientByCpf(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("call identity API: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return decodeClient(resp.Body)
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrClientNotFound
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
}

func decodeClient(body []byte) (*ClientPayload, error) {
	var payload ClientPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	return &payload, nil
}
