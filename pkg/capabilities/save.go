package capabilities

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// Save writes the table to a path or writer.
//
// JSON output is UTF-8 with two-space indentation and keys in sorted
// order; non-ASCII text and HTML characters are written as-is. A file
// target is overwritten in place (no temp file), creating parent
// directories as needed. The encoding is completed in memory first so an
// encoding failure never truncates an existing file.
func Save(m Map, opts ...SaveOption) error {
	options := SaveDefaults().Apply(opts...)
	if !options.format.IsValid() {
		return errors.NewValidationError("format", options.format, "unsupported format")
	}

	data, err := Encode(m, options.format)
	if err != nil {
		return err
	}

	if options.writer != nil {
		if _, err := options.writer.Write(data); err != nil {
			return errors.WrapIO("write", "writer", err)
		}
		return nil
	}

	if options.path == "" {
		return errors.NewValidationError("path", "", "either a path or a writer is required")
	}

	if err := os.MkdirAll(filepath.Dir(options.path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(options.path), err)
	}
	if err := os.WriteFile(options.path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", options.path, err)
	}
	return nil
}

// Encode serializes the table in the given format.
func Encode(m Map, format Format) ([]byte, error) {
	if m == nil {
		m = Map{}
	}

	switch format {
	case FormatYAML:
		data, err := yaml.MarshalWithOptions(m,
			yaml.Indent(2),
			yaml.IndentSequence(false),
		)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", constants.JSONIndent)
		if err := enc.Encode(m); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return buf.Bytes(), nil
	}
}
