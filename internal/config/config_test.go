package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config or .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"RDIO_CONSUMER_KEY", "RDIO_CONSUMER_SECRET", "RDIO_ACCESS_TOKEN",
		"RDIO_ACCESS_TOKEN_SECRET", "RDIO_BASE_URL", "RDIO_OUTPUT_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, rdio.DefaultBaseURL, cfg.Rdio.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Rdio.Timeout)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, filepath.Join(home, ".local", "share", "rdio", "journal.db"), cfg.Journal.Path)
	assert.Equal(t, 30*24*time.Hour, cfg.Journal.Retention)
	assert.False(t, cfg.HasCredentials())
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "rdio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rdio:
  consumer_key: file-key
  consumer_secret: file-secret
  timeout: 5s
output:
  format: JSON
  width: 100
journal:
  enabled: false
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Rdio.ConsumerKey)
	assert.Equal(t, "file-secret", cfg.Rdio.ConsumerSecret)
	assert.Equal(t, 5*time.Second, cfg.Rdio.Timeout)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 100, cfg.Output.Width)
	assert.False(t, cfg.Journal.Enabled)
	assert.True(t, cfg.HasCredentials())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "rdio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rdio:\n  consumer_key: file-key\n"), 0600))

	t.Setenv("RDIO_CONSUMER_KEY", "env-key")
	t.Setenv("RDIO_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Rdio.ConsumerKey)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestDotEnv(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(".env", []byte("RDIO_CONSUMER_KEY=dotenv-key\nRDIO_CONSUMER_SECRET=dotenv-secret\n"), 0600))
	t.Cleanup(func() {
		_ = os.Unsetenv("RDIO_CONSUMER_KEY")
		_ = os.Unsetenv("RDIO_CONSUMER_SECRET")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.Rdio.ConsumerKey)
	assert.Equal(t, "dotenv-secret", cfg.Rdio.ConsumerSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"negative width", func(c *Config) { c.Output.Width = -1 }, true},
		{"negative timeout", func(c *Config) { c.Rdio.Timeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Output: OutputConfig{Format: "table"}}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Rdio.ConsumerKey = "saved-key"
	cfg.Rdio.ConsumerSecret = "saved-secret"
	cfg.Output.Width = 80

	path, err := cfg.Save("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(GetConfigDir(), "config.yaml"), path)

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.Rdio.ConsumerKey)
	assert.Equal(t, "saved-secret", loaded.Rdio.ConsumerSecret)
	assert.Equal(t, 80, loaded.Output.Width)
	assert.Equal(t, cfg.Journal.Retention, loaded.Journal.Retention)

	client := loaded.ClientConfig()
	assert.Equal(t, "saved-key", client.ConsumerKey)
	assert.Equal(t, rdio.DefaultBaseURL, client.BaseURL)
}
