package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds environment-based configuration.
// The components directory is intentionally absent, its location is fixed.
type EnvConfig struct {
	Verbose bool   `envconfig:"SHADCN_REMOVER_VERBOSE" default:"false"`
	NoColor string `envconfig:"NO_COLOR"`
}

// LoadEnvConfig loads configuration from environment variables
func LoadEnvConfig() (*EnvConfig, error) {
	var cfg EnvConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Colorless reports whether coloured output was disabled, see https://no-color.org.
func (c *EnvConfig) Colorless() bool {
	return c.NoColor != ""
}
