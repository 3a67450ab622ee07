// Package config provides configuration loading for goaisc.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete goaisc configuration.
type Config struct {
	Database Database `yaml:"database"`
	Logging  Logging  `yaml:"logging"`
	Source   Source   `yaml:"source"`
}

// Database configures the PostgreSQL store.
type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	// Schema holds the shape tables (default: public)
	Schema         string        `yaml:"schema"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	MaxConns       int32         `yaml:"max_conns"`
}

// Logging configures the zap logger.
type Logging struct {
	// Level is a zap level name: debug, info, warn, error
	Level string `yaml:"level"`
	// Format is "json" or "console"
	Format      string `yaml:"format"`
	OutputPath  string `yaml:"output_path"`
	Development bool   `yaml:"development"`
}

// Source configures the shapes database file.
type Source struct {
	// CSV is the default path of the AISC shapes CSV
	CSV string `yaml:"csv"`
}

// Environment variables read by ApplyEnv.
const (
	EnvDBHost         = "AISC_DB_HOST"
	EnvDBPort         = "AISC_DB_PORT"
	EnvDBName         = "AISC_DB_NAME"
	EnvDBUser         = "AISC_DB_USER"
	EnvDBPassword     = "AISC_DB_PASSWORD"
	EnvDBSSLMode      = "AISC_DB_SSLMODE"
	EnvDBSchema       = "AISC_DB_SCHEMA"
	EnvConnectTimeout = "AISC_DB_CONNECT_TIMEOUT"
	EnvLogLevel       = "AISC_LOG_LEVEL"
	EnvLogFormat      = "AISC_LOG_FORMAT"
	EnvCSV            = "AISC_CSV"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: Database{
			Host:           "localhost",
			Port:           5432,
			Name:           "aisc",
			User:           "postgres",
			SSLMode:        "prefer",
			Schema:         "public",
			ConnectTimeout: 30 * time.Second,
			MaxConns:       10,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return fmt.Errorf("database.port %d is out of range", c.Database.Port)
	}
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if c.Database.MaxConns < 0 {
		return errors.New("database.max_conns must not be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Load builds the configuration with layered precedence:
// 1. Defaults
// 2. YAML file at path (skipped when path is empty)
// 3. .env in the working directory, if present
// 4. Environment variables
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from AISC_* environment variables.
func (c *Config) ApplyEnv() error {
	overrides := []struct {
		env  string
		dest *string
	}{
		{EnvDBHost, &c.Database.Host},
		{EnvDBName, &c.Database.Name},
		{EnvDBUser, &c.Database.User},
		{EnvDBPassword, &c.Database.Password},
		{EnvDBSSLMode, &c.Database.SSLMode},
		{EnvDBSchema, &c.Database.Schema},
		{EnvLogLevel, &c.Logging.Level},
		{EnvLogFormat, &c.Logging.Format},
		{EnvCSV, &c.Source.CSV},
	}
	for _, s := range overrides {
		if v := os.Getenv(s.env); v != "" {
			*s.dest = v
		}
	}

	if v := os.Getenv(EnvDBPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDBPort, err)
		}
		c.Database.Port = port
	}
	if v := os.Getenv(EnvConnectTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvConnectTimeout, err)
		}
		c.Database.ConnectTimeout = d
	}
	return nil
}

// DSN returns the PostgreSQL connection URL.
func (d Database) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}

	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(d.ConnectTimeout.Seconds())))
	}
	if d.Schema != "" && d.Schema != "public" {
		q.Set("search_path", d.Schema)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
