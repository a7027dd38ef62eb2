package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

// Config holds application configuration
type Config struct {
	// Rdio API credentials and endpoint
	Rdio RdioConfig

	// Output controls how command results are printed
	Output OutputConfig

	// Logging controls the diagnostic log on stderr
	Logging LoggingConfig

	// Journal controls the local record of API calls
	Journal JournalConfig
}

// RdioConfig holds Rdio specific configuration
type RdioConfig struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
	BaseURL           string
	Timeout           time.Duration
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format is one of table, json or yaml
	// Default: "table"
	Format string

	// Width of the table output in display columns (0 = unlimited)
	Width int
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string
	File  string
}

// JournalConfig holds call journal configuration
type JournalConfig struct {
	Enabled   bool
	Path      string
	Retention time.Duration
}

// Formats lists the accepted output formats.
var Formats = []string{"table", "json", "yaml"}

// Load reads configuration from a .env file, the config file and the
// environment, in increasing order of precedence. An empty configFile
// searches the default locations.
func Load(configFile string) (*Config, error) {
	// .env values become environment variables; real ones win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(getConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Nested keys map to RDIO_<SECTION>_<KEY>; credentials also to RDIO_<KEY>
	v.SetEnvPrefix("RDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"consumer_key", "consumer_secret", "access_token", "access_token_secret", "base_url"} {
		_ = v.BindEnv("rdio."+key, "RDIO_"+strings.ToUpper(key))
	}

	cfg := &Config{
		Rdio: RdioConfig{
			ConsumerKey:       v.GetString("rdio.consumer_key"),
			ConsumerSecret:    v.GetString("rdio.consumer_secret"),
			AccessToken:       v.GetString("rdio.access_token"),
			AccessTokenSecret: v.GetString("rdio.access_token_secret"),
			BaseURL:           v.GetString("rdio.base_url"),
			Timeout:           v.GetDuration("rdio.timeout"),
		},
		Output: OutputConfig{
			Format: strings.ToLower(v.GetString("output.format")),
			Width:  v.GetInt("output.width"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("logging.level"),
			File:  v.GetString("logging.file"),
		},
		Journal: JournalConfig{
			Enabled:   v.GetBool("journal.enabled"),
			Path:      v.GetString("journal.path"),
			Retention: v.GetDuration("journal.retention"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("rdio.base_url", rdio.DefaultBaseURL)
	v.SetDefault("rdio.timeout", 30*time.Second)

	v.SetDefault("output.format", "table")
	v.SetDefault("output.width", 0)

	v.SetDefault("logging.level", "warn")

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(getDataDir(), "journal.db"))
	v.SetDefault("journal.retention", 30*24*time.Hour)
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	valid := false
	for _, f := range Formats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(Formats, ", "), c.Output.Format)
	}

	if c.Output.Width < 0 {
		return fmt.Errorf("output.width must not be negative, got %d", c.Output.Width)
	}

	if c.Rdio.Timeout < 0 {
		return fmt.Errorf("rdio.timeout must not be negative, got %s", c.Rdio.Timeout)
	}

	return nil
}

// HasCredentials reports whether the consumer key and secret are set.
func (c *Config) HasCredentials() bool {
	return c.Rdio.ConsumerKey != "" && c.Rdio.ConsumerSecret != ""
}

// ClientConfig returns the SDK configuration for these settings.
func (c *Config) ClientConfig() rdio.Config {
	return rdio.Config{
		ConsumerKey:       c.Rdio.ConsumerKey,
		ConsumerSecret:    c.Rdio.ConsumerSecret,
		AccessToken:       c.Rdio.AccessToken,
		AccessTokenSecret: c.Rdio.AccessTokenSecret,
		BaseURL:           c.Rdio.BaseURL,
	}
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "rdio")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the directory for local state such as the journal
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "rdio")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to path, or to config.yaml in the config
// directory when path is empty. It returns the file written.
func (c *Config) Save(path string) (string, error) {
	v := viper.New()

	if path == "" {
		path = filepath.Join(getConfigDir(), "config.yaml")
	}

	v.Set("rdio.consumer_key", c.Rdio.ConsumerKey)
	v.Set("rdio.consumer_secret", c.Rdio.ConsumerSecret)
	v.Set("rdio.access_token", c.Rdio.AccessToken)
	v.Set("rdio.access_token_secret", c.Rdio.AccessTokenSecret)
	v.Set("rdio.base_url", c.Rdio.BaseURL)
	v.Set("rdio.timeout", c.Rdio.Timeout.String())
	v.Set("output.format", c.Output.Format)
	v.Set("output.width", c.Output.Width)
	v.Set("logging.level", c.Logging.Level)
	v.Set("logging.file", c.Logging.File)
	v.Set("journal.enabled", c.Journal.Enabled)
	v.Set("journal.path", c.Journal.Path)
	v.Set("journal.retention", c.Journal.Retention.String())

	if err := v.WriteConfigAs(path); err != nil {
		return "", err
	}
	return path, nil
}
