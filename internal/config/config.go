/*
Package config loads runtime settings from defaults, an optional config file,
LOLBUNNY_* environment variables and bound command-line flags.
*/
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "LOLBUNNY"

// Viper keys.
const (
	KeyServerAddr            = "server.addr"
	KeyServerPublicURL       = "server.public_url"
	KeyServerShutdownTimeout = "server.shutdown_timeout"
	KeySearchFallbackURL     = "search.fallback_url"
	KeyLoggingLevel          = "logging.level"
	KeyLoggingFormat         = "logging.format"
)

// Config is the full runtime configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	PublicURL       string        `mapstructure:"public_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SearchConfig configures the fallback for unknown shortcuts.
type SearchConfig struct {
	FallbackURL string `mapstructure:"fallback_url"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyServerAddr, ":8000")
	v.SetDefault(KeyServerPublicURL, "http://localhost:8000")
	v.SetDefault(KeyServerShutdownTimeout, 5*time.Second)
	v.SetDefault(KeySearchFallbackURL, "https://google.com/search?q=")
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFormat, "console")

	// LOLBUNNY_SERVER_ADDR, LOLBUNNY_LOGGING_LEVEL, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file, unmarshals and validates the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func normalize(cfg *Config) {
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
	cfg.Server.PublicURL = strings.TrimRight(strings.TrimSpace(cfg.Server.PublicURL), "/")
	cfg.Search.FallbackURL = strings.TrimSpace(cfg.Search.FallbackURL)
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
}

func validate(cfg *Config) error {
	var errs []error
	if cfg.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if err := requireAbsoluteURL(KeyServerPublicURL, cfg.Server.PublicURL); err != nil {
		errs = append(errs, err)
	}
	if err := requireAbsoluteURL(KeySearchFallbackURL, cfg.Search.FallbackURL); err != nil {
		errs = append(errs, err)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be positive, got %s", cfg.Server.ShutdownTimeout))
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", cfg.Logging.Format))
	}
	return errors.Join(errs...)
}

func requireAbsoluteURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", key, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}
