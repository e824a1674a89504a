// Package app provides the application context and dependency management
// for the modelcaps CLI: configuration, logging and construction of the
// updater used by every command.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/modelcaps"
	"github.com/agentstation/modelcaps/internal/appcontext"
	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the modelcaps application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the standard locations and can be
// replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// OutputPath returns the configured output path or the default location
// next to the tool directory.
func (a *App) OutputPath() (string, error) {
	if a.config.OutputPath != "" {
		return a.config.OutputPath, nil
	}
	return modelcaps.DefaultOutputPath()
}

// Updater builds an updater from the configuration. opts are applied
// after the configured values and override them.
func (a *App) Updater(opts ...modelcaps.Option) (*modelcaps.Updater, error) {
	base := []modelcaps.Option{
		modelcaps.WithCatalogURL(a.config.CatalogURL),
		modelcaps.WithTimeout(a.config.Timeout),
	}
	if a.config.OutputPath != "" {
		base = append(base, modelcaps.WithOutputPath(a.config.OutputPath))
	}
	return modelcaps.New(append(base, opts...)...)
}

// Capabilities loads a generated table. An empty path reads the
// configured output file.
func (a *App) Capabilities(path string) (capabilities.Map, error) {
	if path == "" {
		var err error
		if path, err = a.OutputPath(); err != nil {
			return nil, err
		}
	}
	return capabilities.Load(path)
}

// Shutdown performs graceful shutdown of the application. A run holds no
// background resources, so only the log is flushed.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if err := config.Validate(); err != nil {
			return err
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
