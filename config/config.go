package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the portal and the watch client.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"portal.db"`

	SessionLifetime time.Duration `envconfig:"SESSION_LIFETIME" default:"2h"`
	UseHTTPS        bool          `envconfig:"USE_HTTPS" default:"false"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	OIDCDomain       string `envconfig:"OIDC_DOMAIN"`
	OIDCClientID     string `envconfig:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `envconfig:"OIDC_CLIENT_SECRET"`
	OIDCCallbackURL  string `envconfig:"OIDC_CALLBACK_URL"`

	LoginRateLimit int `envconfig:"LOGIN_RATE_LIMIT" default:"10"`

	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`
	PollWindow   time.Duration `envconfig:"POLL_WINDOW" default:"5m"`
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from environment variables only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that cannot be expressed as envconfig tags
func (c *Config) Validate() error {
	if c.IsProduction() && !c.UseHTTPS {
		return errors.New("USE_HTTPS must be enabled in production")
	}
	if c.SessionLifetime <= 0 {
		return errors.New("SESSION_LIFETIME must be positive")
	}
	if c.LoginRateLimit <= 0 {
		return errors.New("LOGIN_RATE_LIMIT must be positive")
	}
	if c.PollInterval <= 0 || c.PollWindow <= 0 {
		return errors.New("POLL_INTERVAL and POLL_WINDOW must be positive")
	}
	return nil
}

// IsProduction returns true when the portal runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// SSOEnabled reports whether every OIDC setting is present
func (c *Config) SSOEnabled() bool {
	return c.OIDCDomain != "" && c.OIDCClientID != "" && c.OIDCClientSecret != "" && c.OIDCCallbackURL != ""
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
