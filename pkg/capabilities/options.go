package capabilities

import "io"

// Format is an on-disk encoding of the capability table.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "", "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	}
	return FormatJSON, false
}

// SaveOptions is the configuration for Save.
type SaveOptions struct {
	path   string
	writer io.Writer
	format Format
}

// Path returns the destination file path.
func (s *SaveOptions) Path() string {
	return s.path
}

// Writer returns the destination writer.
func (s *SaveOptions) Writer() io.Writer {
	return s.writer
}

// Format returns the output format.
func (s *SaveOptions) Format() Format {
	return s.format
}

// SaveDefaults returns the default save options.
func SaveDefaults() *SaveOptions {
	return &SaveOptions{format: FormatJSON}
}

// Apply applies the given options to the save options.
func (s *SaveOptions) Apply(opts ...SaveOption) SaveOptions {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// SaveOption is a function that configures save options.
type SaveOption func(*SaveOptions)

// WithFormat for custom output format.
func WithFormat(f Format) SaveOption {
	return func(s *SaveOptions) {
		s.format = f
	}
}

// WithPath for filesystem saves.
func WithPath(path string) SaveOption {
	return func(s *SaveOptions) {
		s.path = path
	}
}

// WithWriter for custom outputs. A writer takes precedence over a path.
func WithWriter(w io.Writer) SaveOption {
	return func(s *SaveOptions) {
		s.writer = w
	}
}
