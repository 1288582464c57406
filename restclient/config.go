package restclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config configures the REST client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the default per-request timeout. Defaults to
	// DefaultTimeout; NoTimeout disables the deadline by default.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent on requests that do not set their own.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures TLS settings for the transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is valid. Problems are reported as
// configuration errors, never at request time.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return NewConfigurationError(fmt.Sprintf("invalid config: %v", err))
	}
	if c.Timeout < 0 && c.Timeout != NoTimeout {
		return NewConfigurationError("timeout must be positive, zero, or NoTimeout")
	}
	if err := c.TLS.Validate(); err != nil {
		return NewConfigurationError(err.Error())
	}
	return nil
}

// LoadConfig reads a client configuration from a YAML file. A .env file in
// the working directory is preloaded first so environment overrides
// (RESTKIT_*) are visible to viper.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RESTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, NewConfigurationError(fmt.Sprintf("read config: %v", err))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, NewConfigurationError(fmt.Sprintf("parse config: %v", err))
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
