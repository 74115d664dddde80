// Package cachehttp is the HTTP client for the cache service under test.
package cachehttp

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

// DefaultTimeout is the process-wide request timeout. It is deliberately
// generous: large-payload scenarios can hold a connection for a long time,
// and expiry is counted as a dispatch failure rather than retried.
const DefaultTimeout = 300 * time.Second

// poolHeadroom is added on top of the scenario's concurrency bound when
// sizing the connection pool.
const poolHeadroom = 100

// Client talks to a cache service exposing the clear/store/retrieve API.
// One client is acquired per scenario and released at scenario end.
type Client struct {
	httpClient *http.Client
	transport  *http.Transport
	baseURL    string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a cache client with the given options.
func NewClient(options ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        poolHeadroom,
		MaxIdleConnsPerHost: poolHeadroom,
	}

	client := &Client{
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
		transport: transport,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL of the cache service.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithPoolSize sizes the connection pool to the scenario's concurrency
// bound plus headroom, so a full batch never queues on pool exhaustion.
func WithPoolSize(users int) ClientOption {
	return func(c *Client) {
		size := users + poolHeadroom
		c.transport.MaxIdleConns = size
		c.transport.MaxIdleConnsPerHost = size
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Reset clears the remote cache state via DELETE /clear.
func (c *Client) Reset(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/clear", nil)
}

// Store writes a key/value pair via POST /store with a JSON body.
func (c *Client) Store(ctx context.Context, key string, value []byte) (*Response, error) {
	body, err := json.Marshal(storeRequest{Key: key, Value: string(value)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode store body: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/store", body)
}

// Retrieve reads a key via GET /retrieve/{key}.
func (c *Client) Retrieve(ctx context.Context, key string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/retrieve/"+url.PathEscape(key), nil)
}

// Close releases the client's pooled connections. Safe to call more than
// once; called at scenario end regardless of outcome.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}

// storeRequest is the JSON body of a store call.
type storeRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// do issues one request and fully consumes the response body before
// returning, so response timing taken around it covers the whole exchange.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		rawBody:    respBody,
	}, nil
}
