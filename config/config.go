package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Email         string        `envconfig:"LIBRELINKUP_EMAIL" required:"true"`
	Password      string        `envconfig:"LIBRELINKUP_PASSWORD" required:"true"`
	Region        string        `envconfig:"LIBRELINKUP_REGION" default:"US"`
	BaseURL       string        `envconfig:"LIBRELINKUP_BASE_URL"`
	ClientVersion string        `envconfig:"LIBRELINKUP_CLIENT_VERSION" default:"4.12.0"`
	HttpTimeout   time.Duration `envconfig:"LIBRELINKUP_HTTP_TIMEOUT" default:"30s"`
	LogLevel      string        `envconfig:"LIBRELINKUP_LOG_LEVEL" default:"warn"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// NewFromEnv is a provider of a loaded configuration.
func NewFromEnv() (*Config, error) {
	c := New()
	if err := c.LoadFromEnv(); err != nil {
		return nil, err
	}
	return c, nil
}
