// Package constants provides shared constants used throughout the modelcaps codebase.
// This includes timeouts, file permissions, paths and the upstream catalog location
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// CatalogFetchTimeout bounds the single GET against the upstream catalog
	CatalogFetchTimeout = 15 * time.Second

	// ShutdownTimeout is how long main waits for cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Logging constants
const (
	// LogRotationSizeMB is the maximum size in megabytes of a log file before rotation
	LogRotationSizeMB = 10

	// LogRotationAgeDays is the maximum age of rotated log files in days
	LogRotationAgeDays = 7

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)

// Upstream catalog constants
const (
	// OpenRouterModelsURL is the public OpenRouter model listing endpoint
	OpenRouterModelsURL = "https://openrouter.ai/api/v1/models"

	// OpenRouterSource is the name used for the upstream in errors and logs
	OpenRouterSource = "openrouter"
)

// Path constants
const (
	// FrontendConfigDir is the output directory relative to the repository root
	FrontendConfigDir = "frontend/src/config"

	// CapabilitiesFileName is the name of the generated capabilities file
	CapabilitiesFileName = "model-capabilities.json"

	// ConfigFileName is the config file name searched in $HOME and the working directory
	ConfigFileName = ".modelcaps"

	// EnvPrefix prefixes every environment variable read through viper
	EnvPrefix = "MODELCAPS"
)

// Format constants
const (
	// JSONIndent is the indentation used for generated JSON files
	JSONIndent = "  "
)
