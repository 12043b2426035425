package shelterapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/heartmarshall/miaudota/internal/config"
	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/pkg/ctxutil"
)

// RequestIDHeader carries the correlation id of every upstream call.
const RequestIDHeader = "X-Request-Id"

// TokenSource supplies the bearer token for authenticated calls.
// An empty token means the call is made anonymously.
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the shelter REST API.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	tokens  TokenSource
	log     *slog.Logger
}

// NewClient creates a Client for the configured upstream. tokens may be nil.
func NewClient(cfg config.UpstreamConfig, tokens TokenSource, logger *slog.Logger) *Client {
	log := logger.With("adapter", "shelterapi")

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	rc.Logger = log
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    rc,
		tokens:  tokens,
		log:     log,
	}
}

// BaseURL returns the upstream base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request and decodes the JSON response into out (if non-nil).
// Numbers decode as json.Number so identifiers keep their exact form.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var payload any
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("shelterapi: encode body: %w", err)
		}
		payload = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, reqURL, payload)
	if err != nil {
		return fmt.Errorf("shelterapi: create request: %w", err)
	}

	requestID := ctxutil.RequestIDFromCtx(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(req); err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("shelterapi: %s %s: %w: %w", method, path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "shelterapi response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID),
	)

	if err := statusError(resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("shelterapi: %s %s: %w", method, path, err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("shelterapi: read body: %w", err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("shelterapi: decode json: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *retryablehttp.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("shelterapi: token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case code == http.StatusForbidden:
		return domain.ErrForbidden
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: upstream rejected the request (status %d)", domain.ErrValidation, code)
	default:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrUpstream, code)
	}
}
