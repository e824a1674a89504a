package openrouter

import (
	"context"
	"time"

	"github.com/agentstation/modelcaps/internal/transport"
	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
	"github.com/agentstation/modelcaps/pkg/logging"
)

// Client fetches the OpenRouter model listing.
type Client struct {
	url       string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	url        string
	timeout    time.Duration
	transports []transport.Option
}

// WithURL overrides the models endpoint.
func WithURL(url string) Option {
	return func(o *clientOptions) {
		if url != "" {
			o.url = url
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithTransportOptions passes options through to the transport client.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *clientOptions) {
		o.transports = append(o.transports, opts...)
	}
}

// NewClient creates a client for the public models endpoint.
func NewClient(opts ...Option) *Client {
	o := &clientOptions{
		url:     constants.OpenRouterModelsURL,
		timeout: constants.CatalogFetchTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	topts := append([]transport.Option{}, o.transports...)
	topts = append(topts, transport.WithTimeout(o.timeout))

	return &Client{
		url:       o.url,
		transport: transport.New(constants.OpenRouterSource, topts...),
	}
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string {
	return c.url
}

// ListModels performs the single GET and returns the raw model records.
// Every failure is returned as an *errors.FetchError.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("url", c.url).
		Dur("timeout", c.transport.Timeout()).
		Msg("Fetching model catalog")

	start := time.Now()
	body, err := c.transport.Get(ctx, c.url)
	if err != nil {
		return nil, errors.NewFetchError(constants.OpenRouterSource, c.url, err)
	}

	models, err := ParseModels(body)
	if err != nil {
		return nil, errors.NewFetchError(constants.OpenRouterSource, c.url, err)
	}

	logger.Debug().
		Int("records", len(models)).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched model catalog")

	return models, nil
}
