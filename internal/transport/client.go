// Package transport provides the HTTP plumbing used to talk to upstream
// model catalogs: a bounded-timeout client and response helpers that map
// failures onto the typed errors in pkg/errors.
package transport

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.CatalogFetchTimeout

// Client provides HTTP client functionality for a single named upstream.
type Client struct {
	http   *http.Client
	source string
}

// New creates a new transport client for source.
func New(source string, opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		source: source,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the overall request timeout. Non-positive values keep
// DefaultHTTPTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// Source returns the upstream name used in errors.
func (c *Client) Source() string {
	return c.source
}

// Timeout returns the configured request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// Get performs a GET request and returns the response body of a 2xx reply.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errors.APIError{
			Provider: c.source,
			Endpoint: url,
			Message:  "failed to create request",
			Err:      err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.wrapDoError(ctx, url, err)
	}

	return ReadBody(resp, c.source)
}

// wrapDoError converts a failed round trip into a timeout, cancellation or
// connection error.
func (c *Client) wrapDoError(ctx context.Context, url string, err error) error {
	var netErr net.Error
	switch {
	case stderrors.Is(err, context.DeadlineExceeded),
		stderrors.As(err, &netErr) && netErr.Timeout():
		return &errors.TimeoutError{
			Operation: "GET " + url,
			Duration:  c.http.Timeout.String(),
			Message:   err.Error(),
			Err:       err,
		}
	case ctx.Err() != nil && stderrors.Is(ctx.Err(), context.Canceled):
		return &errors.APIError{
			Provider: c.source,
			Endpoint: url,
			Message:  errors.ErrCanceled.Error(),
			Err:      stderrors.Join(errors.ErrCanceled, err),
		}
	default:
		return errors.WrapAPI(c.source, 0, err)
	}
}
