package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/modelcaps"
	"github.com/agentstation/modelcaps/pkg/capabilities"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	UpdaterFunc      func(...modelcaps.Option) (*modelcaps.Updater, error)
	CapabilitiesFunc func(path string) (capabilities.Map, error)
	OutputPathFunc   func() (string, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Updater returns an updater using the mock function or one built from opts.
func (m *Mock) Updater(opts ...modelcaps.Option) (*modelcaps.Updater, error) {
	if m.UpdaterFunc != nil {
		return m.UpdaterFunc(opts...)
	}
	return modelcaps.New(opts...)
}

// Capabilities returns a table using the mock function or an empty one.
func (m *Mock) Capabilities(path string) (capabilities.Map, error) {
	if m.CapabilitiesFunc != nil {
		return m.CapabilitiesFunc(path)
	}
	return capabilities.Map{}, nil
}

// OutputPath returns the output path using the mock function or "".
func (m *Mock) OutputPath() (string, error) {
	if m.OutputPathFunc != nil {
		return m.OutputPathFunc()
	}
	return "", nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
