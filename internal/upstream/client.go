// Package upstream is the HTTP client for the remote beauty-store REST API.
// Every response arrives in the {status, data, des} envelope convention;
// status == 1 signals success and des carries a human-readable error message.
// Payloads are decoded into typed models at this boundary, never passed
// through as raw JSON.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// statusOK is the envelope status value that signals success.
const statusOK = 1

// Client performs authenticated calls against the store API. The bearer
// token is supplied per call by the session layer; the client itself holds
// no credential state.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given API origin, e.g. http://localhost:5000.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the upstream response wrapper.
type envelope struct {
	Status    int             `json:"status"`
	ErrorCode int             `json:"errorCode"`
	Code      string          `json:"code"`
	Data      json.RawMessage `json:"data"`
	Des       string          `json:"des"`
}

// call issues one request and unwraps the envelope. A nil error means the
// envelope reported success; Data may still be empty for bare-ack endpoints.
func (c *Client) call(ctx context.Context, token, method, path string, query url.Values, contentType string, body io.Reader) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Multipart callers pass their writer's content type; JSON callers pass
	// application/json. File-bearing requests must not override the boundary.
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s envelope: %w", path, err)
	}
	if env.Status != statusOK {
		return nil, &APIError{Path: path, Code: env.Code, ErrorCode: env.ErrorCode, Des: env.Des}
	}
	return &env, nil
}

// get issues a GET and unwraps the envelope.
func (c *Client) get(ctx context.Context, token, path string, query url.Values) (*envelope, error) {
	return c.call(ctx, token, http.MethodGet, path, query, "", nil)
}

// decode unmarshals an envelope's data field into the endpoint's typed
// payload.
func decode[T any](env *envelope, path string) (T, error) {
	var v T
	if len(env.Data) == 0 {
		return v, fmt.Errorf("%s: envelope has no data", path)
	}
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return v, fmt.Errorf("decode %s data: %w", path, err)
	}
	return v, nil
}
