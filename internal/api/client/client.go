// Package client provides a thin HTTP client for the dataset-pricer API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"syscall"
)

const userAgent = "dpctl"

// Client is a thin HTTP client for the dataset-pricer API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	actorID    string
	cronToken  string
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithActor sets the user ID sent as X-Actor-ID on price changes.
func WithActor(id string) Option {
	return func(c *Client) {
		c.actorID = id
	}
}

// WithCronToken sets the shared secret sent to the reprice trigger.
func WithCronToken(token string) Option {
	return func(c *Client) {
		c.cronToken = token
	}
}

// get performs a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, dst)
}

// post performs a POST request with a JSON body and decodes the response into dst.
func (c *Client) post(ctx context.Context, path string, header http.Header, body, dst any) error {
	return c.do(ctx, http.MethodPost, path, header, body, dst)
}

// put performs a PUT request with a JSON body and decodes the response into dst.
func (c *Client) put(ctx context.Context, path string, body, dst any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, dst)
}

func (c *Client) do(ctx context.Context, method, path string, header http.Header, body, dst any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, respBody)
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// APIError is a response with a 4xx or 5xx status. When the server sent a
// problem document its title, detail and field errors are decoded.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
	Fields     []string
	Body       string
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: string(body)}

	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Errors []struct {
			Message  string `json:"message"`
			Location string `json:"location"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &problem) == nil {
		e.Title, e.Detail = problem.Title, problem.Detail
		for _, fe := range problem.Errors {
			e.Fields = append(e.Fields, strings.TrimSpace(fe.Location+" "+fe.Message))
		}
	}
	return e
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Body)
	}
	msg := fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Detail)
	if len(e.Fields) > 0 {
		msg += " (" + strings.Join(e.Fields, "; ") + ")"
	}
	return msg
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
