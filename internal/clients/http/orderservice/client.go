package orderservice

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
)

// ProductPayload is the order service representation of a product.
type ProductPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Response is the answer received for a product registration.
type Response struct {
	StatusCode int
	Body       string
}

// Success reports whether the order service accepted the request.
func (r Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RequestEditorFn mutates a request before it is sent.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// Client calls the sibling order service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	editors []RequestEditorFn
}

// Option configures the client.
type Option func(*Client)

// WithRequestEditorFn appends a request editor applied to every call.
func WithRequestEditorFn(fn RequestEditorFn) Option {
	return func(c *Client) {
		if fn != nil {
			c.editors = append(c.editors, fn)
		}
	}
}

// NewOrderServiceClient instantiates the order service client with sane defaults.
func NewOrderServiceClient(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("order service base URL is required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	c := &Client{baseURL: parsed, http: httpClient}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// AddNewProduct posts the product to /products. Any answer, including error statuses, is returned
// as a Response; an error means no answer was received.
func (c *Client) AddNewProduct(ctx context.Context, payload ProductPayload) (Response, error) {
	if c == nil || c.http == nil {
		return Response{}, errors.New("order service client not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("encode product: %w", err)
	}
	endpoint, err := c.baseURL.Parse("products")
	if err != nil {
		return Response{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	for _, edit := range c.editors {
		if err := edit(ctx, req); err != nil {
			return Response{}, err
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("call order service API: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read order service response: %w", err)
	}
	return Response{StatusCode: resp.StatusCode, Body: string(raw)}, nil
}
