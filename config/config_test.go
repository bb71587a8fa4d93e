package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "test-app",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Database: DatabaseConfig{
			Path:         "hawaii.sqlite",
			MaxOpenConns: 1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	// Test default values
	assert.Equal(t, "climate-api", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, 10, config.Server.WriteTimeout)
	assert.Equal(t, 120, config.Server.IdleTimeout)
	assert.False(t, config.Server.StrictErrors)
	assert.Equal(t, "hawaii.sqlite", config.Database.Path)
	assert.True(t, config.Database.ReadOnly)
	assert.Equal(t, 5, config.Database.ConnectAttempts)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Empty(t, config.Sentry.DSN)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_STRICT_ERRORS", "true")
	t.Setenv("DATABASE_PATH", "/data/hawaii.sqlite")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "8")
	t.Setenv("LOG_LEVEL", "debug")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.True(t, config.Server.StrictErrors)
	assert.Equal(t, "/data/hawaii.sqlite", config.Database.Path)
	assert.Equal(t, 8, config.Database.MaxOpenConns)
	assert.Equal(t, "debug", config.Log.Level)
}

func TestConfigFileLoading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := []byte(`
app:
  name: climate-file
server:
  port: "7070"
  strict_errors: true
database:
  path: fixtures/hawaii.sqlite
  read_only: false
log:
  level: warn
  format: console
`)
	require.NoError(t, os.WriteFile(path, yamlData, 0o600))

	config, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "climate-file", config.App.Name)
	// Keys absent from the file keep their defaults
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, 10, config.Server.ReadTimeout)
	assert.Equal(t, "7070", config.Server.Port)
	assert.True(t, config.Server.StrictErrors)
	assert.Equal(t, "fixtures/hawaii.sqlite", config.Database.Path)
	assert.False(t, config.Database.ReadOnly)
	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "console", config.Log.Format)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"7070\"\n"), 0o600))
	t.Setenv("SERVER_PORT", "9191")

	config, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9191", config.Server.Port)
}

func TestConfigFileLoading_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o600))

	_, err := NewConfig(path)
	assert.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	// Test valid config
	err := provider.Validate(validConfig())
	assert.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"missing port", func(c *Config) { c.Server.Port = " " }, "server.port is required"},
		{"negative timeout", func(c *Config) { c.Server.IdleTimeout = -1 }, "server timeouts must not be negative"},
		{"missing database path", func(c *Config) { c.Database.Path = "" }, "database.path is required"},
		{"negative pool", func(c *Config) { c.Database.MaxOpenConns = -2 }, "database connection limits"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"console log with sentry", func(c *Config) {
			c.Log.Format = "console"
			c.Sentry.DSN = "https://key@sentry.example.com/1"
		}, "log.format must be json when sentry.dsn is set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := provider.Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{
		App: AppConfig{
			Env: "development",
		},
	}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())

	config.App.Env = "production"
	assert.False(t, config.IsDevelopment())
	assert.True(t, config.IsProduction())
}

func TestConfigSentryEnabled(t *testing.T) {
	tests := []struct {
		env  string
		dsn  string
		want bool
	}{
		{"production", "https://key@sentry.example.com/1", true},
		{"development", "https://key@sentry.example.com/1", true},
		{"staging", "https://key@sentry.example.com/1", false},
		{"production", "", false},
	}

	for _, tt := range tests {
		c := validConfig()
		c.App.Env = tt.env
		c.Sentry.DSN = tt.dsn
		assert.Equal(t, tt.want, c.SentryEnabled(), "%s/%q", tt.env, tt.dsn)
	}
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: validConfig()}

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	failing := &MockConfigProvider{err: errors.New("disk on fire")}
	_, err = NewConfigWithProvider(failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
