package app

import (
	stderrors "errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/modelcaps/pkg/constants"
	"github.com/agentstation/modelcaps/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog and output
	CatalogURL string
	Timeout    time.Duration
	OutputPath string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. MODELCAPS_* environment variables
//  3. .env and .env.local files
//  4. Config file (configFile, or .modelcaps.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("catalog_url", constants.OpenRouterModelsURL)
	v.SetDefault("timeout", constants.CatalogFetchTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	// The unprefixed names are honoured too, matching pkg/logging.
	for key, env := range map[string]string{
		"log_level":  "LOG_LEVEL",
		"log_format": "LOG_FORMAT",
		"log_output": "LOG_OUTPUT",
	} {
		if err := v.BindEnv(key, constants.EnvPrefix+"_"+strings.ToUpper(key), env); err != nil {
			return nil, errors.NewConfigError("env", "binding "+env, err)
		}
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogURL: v.GetString("catalog_url"),
		Timeout:    v.GetDuration("timeout"),
		OutputPath: v.GetString("output_path"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// readConfigFile reads an explicit config file, or searches the standard
// locations. A missing file in the standard locations is not an error.
func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "reading "+configFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(constants.ConfigFileName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "reading "+constants.ConfigFileName+".yaml", err)
	}
	return nil
}

// Validate checks values that would otherwise fail late, during the fetch.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.NewConfigError("timeout", "must be positive, got "+c.Timeout.String(), nil)
	}

	u, err := url.Parse(c.CatalogURL)
	if err != nil {
		return errors.NewConfigError("catalog_url", "malformed URL "+c.CatalogURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewConfigError("catalog_url", "expected an http(s) URL, got "+c.CatalogURL, nil)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overridden, so
// .env.local only contributes what .env did not set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
