package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// ClientPayload is the identity service representation of a client.
type ClientPayload struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	CPF  string `json:"cpf"`
}

// HttpRequestDoer performs HTTP requests.
type HttpRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn mutates a request before it is sent.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

// APIClient is the low level identity service client.
type APIClient struct {
	Server         string
	Client         HttpRequestDoer
	RequestEditors []RequestEditorFn
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient) error

// WithHTTPClient overrides the HTTP doer.
func WithHTTPClient(doer HttpRequestDoer) ClientOption {
	return func(c *APIClient) error {
		c.Client = doer
		return nil
	}
}

// WithRequestEditorFn appends a request editor applied to every call.
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(c *APIClient) error {
		c.RequestEditors = append(c.RequestEditors, fn)
		return nil
	}
}

// NewAPIClient builds a client rooted at server.
func NewAPIClient(server string, opts ...ClientOption) (*APIClient, error) {
	client := APIClient{Server: server}
	for _, o := range opts {
		if err := o(&client); err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(client.Server, "/") {
		client.Server += "/"
	}
	if client.Client == nil {
		client.Client = &http.Client{}
	}
	return &client, nil
}

// NewCreateClientRequest builds POST /clients.
func NewCreateClientRequest(server string, body ClientPayload) (*http.Request, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	queryURL, err := resolve(server, "clients")
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, queryURL.String(), bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	return req, nil
}

// NewGetClientByCpfRequest builds GET /clients/{cpf}.
func NewGetClientByCpfRequest(server string, cpf string) (*http.Request, error) {
	pathParam0, err := runtime.StyleParamWithLocation("simple", false, "cpf", runtime.ParamLocationPath, cpf)
	if err != nil {
		return nil, err
	}
	queryURL, err := resolve(server, fmt.Sprintf("clients/%s", pathParam0))
	if err != nil {
		return nil, err
	}
	return http.NewRequest(http.MethodGet, queryURL.String(), nil)
}

// RawResponse is a fully read HTTP response.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// CreateClient calls POST /clients.
func (c *APIClient) CreateClient(ctx context.Context, body ClientPayload) (*RawResponse, error) {
	req, err := NewCreateClientRequest(c.Server, body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req)
}

// GetClientByCpf calls GET /clients/{cpf}.
func (c *APIClient) GetClientByCpf(ctx context.Context, cpf string) (*RawResponse, error) {
	req, err := NewGetClientByCpfRequest(c.Server, cpf)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req)
}

func (c *APIClient) do(ctx context.Context, req *http.Request) (*RawResponse, error) {
	req = req.WithContext(ctx)
	for _, edit := range c.RequestEditors {
		if err := edit(ctx, req); err != nil {
			return nil, err
		}
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &RawResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func resolve(server, operationPath string) (*url.URL, error) {
	serverURL, err := url.Parse(server)
	if err != nil {
		return nil, err
	}
	return serverURL.Parse(operationPath)
}
