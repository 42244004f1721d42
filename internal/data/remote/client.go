package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hotel-storefront/pkg/utils"

	"go.uber.org/zap"
)

// TokenProvider supplies the bearer token attached to every upstream call.
// It is injected at construction so authentication is an explicit
// dependency of the client, not ambient state.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// ContextTokenProvider forwards the caller's own session token, which the
// auth middleware stashes in the request context.
type ContextTokenProvider struct{}

func (ContextTokenProvider) Token(ctx context.Context) (string, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		return "", nil
	}
	return token, nil
}

// StaticTokenProvider returns a fixed token. Used for service-to-service
// calls and in tests.
type StaticTokenProvider string

func (p StaticTokenProvider) Token(ctx context.Context) (string, error) {
	return string(p), nil
}

// APIError carries the upstream's structured error message so handlers can
// prefer it over a generic failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream API returned status %d", e.StatusCode)
}

// Client talks to the remote hotel/booking REST API.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenProvider
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log.With(zap.String("client", "upstream")),
	}
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses are returned as *APIError with the upstream's
// message when one is present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("resolve bearer token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("Upstream request",
		zap.String("method", method),
		zap.String("url", reqURL),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func queryEscape(s string) string {
	return url.QueryEscape(s)
}
