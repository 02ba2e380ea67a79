package app

import (
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
)

// envPrefix namespaces environment variables, e.g. WINSANE_OFFLINE.
const envPrefix = "WINSANE"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog locations
	DataPath     string
	RemoteURL    string
	FetchTimeout time.Duration
	Offline      bool

	// Executor
	Shell          string
	CommandTimeout time.Duration
	LockPath       string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// explicitLevel is set when --log-level was given on the command line.
	explicitLevel bool
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables (WINSANE_*, LOG_*)
//  3. .env files
//  4. Config file (~/.winsane.yaml or ./.winsane.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("remote_url", constants.DefaultRemoteURL)
	v.SetDefault("fetch_timeout", constants.DefaultFetchTimeout)
	v.SetDefault("shell", constants.DefaultShell)
	v.SetDefault("command_timeout", constants.DefaultCommandTimeout)
	v.SetDefault("offline", false)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit or broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "failed to read config file", err)
		}
	}

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		DataPath:     v.GetString("data_path"),
		RemoteURL:    v.GetString("remote_url"),
		FetchTimeout: v.GetDuration("fetch_timeout"),
		Offline:      v.GetBool("offline"),

		Shell:          v.GetString("shell"),
		CommandTimeout: v.GetDuration("command_timeout"),
		LockPath:       v.GetString("lock_path"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", getOrDefault(v.GetString("log_format"), "auto")),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", getOrDefault(v.GetString("log_output"), "stderr")),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings that would fail later in less obvious ways.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return errors.NewValidationError("fetch_timeout", c.FetchTimeout, "must be positive")
	}
	if c.CommandTimeout < 0 {
		return errors.NewValidationError("command_timeout", c.CommandTimeout, "must not be negative")
	}
	if strings.TrimSpace(c.Shell) == "" {
		return errors.NewValidationError("shell", c.Shell, "cannot be empty")
	}
	if !c.Offline && strings.TrimSpace(c.RemoteURL) == "" {
		return errors.NewValidationError("remote_url", c.RemoteURL, "cannot be empty unless offline")
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags so that
// flags take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor, offline bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if offline {
		c.Offline = true
	}
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
		c.explicitLevel = true
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first because godotenv never overrides.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
