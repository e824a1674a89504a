// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/modelcaps"
	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Updater builds an updater from the loaded configuration. Extra
	// options are applied last so command flags override config values.
	Updater(opts ...modelcaps.Option) (*modelcaps.Updater, error)

	// Capabilities loads the generated table from path, or from the
	// configured output path when path is empty.
	Capabilities(path string) (capabilities.Map, error)

	// OutputPath returns the configured output file location.
	OutputPath() (string, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
