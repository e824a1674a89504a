package modelcaps

import (
	"io"
	"time"

	"github.com/agentstation/modelcaps/pkg/capabilities"
	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// Option is a function that configures an Updater.
type Option func(*config) error

// config holds the updater configuration.
type config struct {
	fetcher    Fetcher
	catalogURL string
	timeout    time.Duration
	outputPath string
	writer     io.Writer
	format     capabilities.Format
	runID      string
}

func defaultConfig() *config {
	return &config{
		catalogURL: constants.OpenRouterModelsURL,
		timeout:    constants.CatalogFetchTimeout,
		format:     capabilities.FormatJSON,
	}
}

// WithFetcher replaces the OpenRouter client, mostly for tests.
func WithFetcher(f Fetcher) Option {
	return func(c *config) error {
		if f == nil {
			return errors.NewValidationError("fetcher", nil, "must not be nil")
		}
		c.fetcher = f
		return nil
	}
}

// WithCatalogURL overrides the catalog endpoint.
func WithCatalogURL(url string) Option {
	return func(c *config) error {
		if url == "" {
			return errors.NewValidationError("catalog_url", url, "must not be empty")
		}
		c.catalogURL = url
		return nil
	}
}

// WithTimeout sets the fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout <= 0 {
			return errors.NewValidationError("timeout", timeout, "must be positive")
		}
		c.timeout = timeout
		return nil
	}
}

// WithOutputPath sets the generated file location.
func WithOutputPath(path string) Option {
	return func(c *config) error {
		c.outputPath = path
		return nil
	}
}

// WithWriter sends the encoded table to w instead of a file. The file at
// the output path is left untouched; it is still read, when present, to
// compute Result.Changes.
func WithWriter(w io.Writer) Option {
	return func(c *config) error {
		c.writer = w
		return nil
	}
}

// WithFormat selects the output encoding.
func WithFormat(f capabilities.Format) Option {
	return func(c *config) error {
		if !f.IsValid() {
			return errors.NewValidationError("format", f, "unsupported format")
		}
		c.format = f
		return nil
	}
}

// WithRunID fixes the run identifier instead of generating one.
func WithRunID(id string) Option {
	return func(c *config) error {
		c.runID = id
		return nil
	}
}
