// Package api implements the HTTP reply client used by the widget's
// endpoint strategy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/chatkit/internal/errors"
)

// NoResponseText is appended when the endpoint returns a decodable JSON
// body that carries neither a "response" nor a "content" field.
const NoResponseText = "No response"

// Client posts user messages to a configured reply endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	headers    map[string]string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient sets the underlying HTTP client. The default client is
// used otherwise, with whatever timeout the transport defaults to.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeaders sets extra request headers. They are merged over the default
// Content-Type header, caller values winning on conflict.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		c.headers = headers
	}
}

// NewClient creates a reply client for the given endpoint.
func NewClient(endpoint string, opts ...ClientOption) (*Client, error) {
	if endpoint == "" {
		return nil, apierrors.ErrNoEndpoint
	}

	client := &Client{
		httpClient: http.DefaultClient,
		endpoint:   endpoint,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SendMessage posts the message and extracts the reply text.
// The response is expected to be a JSON object; the "response" field is
// preferred, then "content", then NoResponseText. A single request, no
// retries.
func (c *Client) SendMessage(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", apierrors.NewAPIError(resp.StatusCode, c.endpoint, http.StatusText(resp.StatusCode))
	}

	return extractReply(c.endpoint, body)
}

// extractReply pulls the reply text from a JSON response body.
func extractReply(endpoint string, body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewDecodeError(endpoint, apierrors.ErrInvalidResponse)
	}

	if field := gjson.GetBytes(body, "response"); field.Exists() && field.String() != "" {
		return field.String(), nil
	}
	if field := gjson.GetBytes(body, "content"); field.Exists() && field.String() != "" {
		return field.String(), nil
	}

	return NoResponseText, nil
}
