package modelcaps

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// ToolDir returns the directory of this module's sources. When the
// sources are not present on disk (an installed binary) it falls back to
// the executable's directory.
func ToolDir() (string, error) {
	if _, file, _, ok := runtime.Caller(0); ok {
		dir := filepath.Dir(file)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.WrapIO("resolve", "executable", err)
	}
	return filepath.Dir(exe), nil
}

// DefaultOutputPath is <parent of ToolDir>/frontend/src/config/model-capabilities.json.
func DefaultOutputPath() (string, error) {
	dir, err := ToolDir()
	if err != nil {
		return "", err
	}
	return OutputPathFor(dir), nil
}

// OutputPathFor returns the generated file location for a tool directory.
func OutputPathFor(toolDir string) string {
	return filepath.Join(filepath.Dir(toolDir), constants.FrontendConfigDir, constants.CapabilitiesFileName)
}
