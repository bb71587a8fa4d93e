package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Sentry   SentryConfig   `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true"`
	// StrictErrors switches validation failures from plain text with 200 to JSON with 400.
	StrictErrors bool `yaml:"strict_errors" split_words:"true"`
}

type DatabaseConfig struct {
	Path            string `yaml:"path"`
	ReadOnly        bool   `yaml:"read_only" split_words:"true"`
	MaxOpenConns    int    `yaml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `yaml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" split_words:"true"`
	ConnectAttempts int    `yaml:"connect_attempts" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

// ConfigProvider loads and validates configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then an optional YAML file, then environment overrides.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func NewConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	return NewConfigWithProvider(NewFileConfigProvider(path))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:    "climate-api",
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
			Path:            "hawaii.sqlite",
			ReadOnly:        true,
			MaxOpenConns:    4,
			MaxIdleConns:    4,
			ConnectAttempts: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaults()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

// loadFromFile overlays the YAML file onto config. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if strings.TrimSpace(config.App.Name) == "" {
		return fmt.Errorf("app.name is required")
	}
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server.port is required")
	}
	if config.Server.ReadTimeout < 0 || config.Server.WriteTimeout < 0 || config.Server.IdleTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	if strings.TrimSpace(config.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	if config.Database.MaxOpenConns < 0 || config.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must not be negative")
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is invalid (allowed: debug, info, warn, error)", config.Log.Level)
	}

	switch config.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is invalid (allowed: json, console)", config.Log.Format)
	}

	// The Sentry hook decodes JSON log entries.
	if config.Sentry.DSN != "" && config.Log.Format != "json" {
		return fmt.Errorf("log.format must be json when sentry.dsn is set")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// SentryEnabled reports whether error entries should be forwarded to Sentry.
// Only development and production report; other zones stay local.
func (c *Config) SentryEnabled() bool {
	return c.Sentry.DSN != "" && (c.IsDevelopment() || c.IsProduction())
}
