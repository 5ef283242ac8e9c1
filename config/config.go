// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Service configuration for the indoorjson server and CLI.
// Policy:
//   - Sources, lowest to highest priority: defaults in code, YAML file, .env file,
//     INDOORJSON_* environment variables.
//   - A .env file never overrides a variable already set in the process environment.
//   - Load always returns a validated Config or an error.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoorjson/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "INDOORJSON_"

// DefaultEnvFile is read when Load is given no explicit .env path; a missing file is ignored.
const DefaultEnvFile = ".env"

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	JSON   JSONConfig   `yaml:"json"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// StoreConfig locates the sqlite database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// JSONConfig controls document encoding; an empty Indent writes compact JSON.
type JSONConfig struct {
	Indent string `yaml:"indent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: logging.FormatJSON},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
			MaxBodyBytes:    16 << 20,
		},
		Store: StoreConfig{Path: "indoorjson.db"},
		JSON:  JSONConfig{Indent: "  "},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path is
// empty), the .env file at envFile (DefaultEnvFile when empty) and the environment.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
	}

	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("Load: env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	return nil
}

// applyEnv overlays INDOORJSON_* variables read through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("ADDR", &c.Server.Addr)
	str("STORE_PATH", &c.Store.Path)
	str("JSON_INDENT", &c.JSON.Indent)

	if v, ok := lookup(EnvPrefix + "SHUTDOWN_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sSHUTDOWN_TIMEOUT: %v: %w", EnvPrefix, err, ErrInvalid)
		}
		c.Server.ShutdownTimeout = d
	}
	if v, ok := lookup(EnvPrefix + "CORS_ORIGINS"); ok {
		c.Server.CORSOrigins = splitList(v)
	}

	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	if c.Log.Format != logging.FormatJSON && c.Log.Format != logging.FormatConsole {
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty: %w", ErrInvalid)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout %v: %w", c.Server.ShutdownTimeout, ErrInvalid)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes %d: %w", c.Server.MaxBodyBytes, ErrInvalid)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is empty: %w", ErrInvalid)
	}
	if strings.Trim(c.JSON.Indent, " \t") != "" {
		return fmt.Errorf("json.indent %q: only spaces and tabs: %w", c.JSON.Indent, ErrInvalid)
	}

	return nil
}

func splitList(v string) []string {
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
