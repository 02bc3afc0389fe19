package restclient

import (
	"fmt"
	"net/url"
	"time"

	"github.com/restkit-go/restkit/logger"
)

const (
	defaultTimeout = 30 * time.Second

	// Version is the library version reported in the default user agent.
	Version = "0.1.0"
)

// Config configures a Client. It is captured at construction time and never
// mutated by individual requests.
type Config struct {
	// BaseURL is the base host URI; request paths are resolved against it.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with every request. Defaults to "restkit/<version>".
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// InsecureSkipVerify disables server certificate verification for the
	// session. Folded into TLS by ApplyDefaults; the policy is applied once
	// to the session transport, never process-wide.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`

	// TLS configures TLS settings for the session transport. The minimum
	// version defaults to TLS 1.2.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Codec is the serializer configuration. Defaults to JSONCodec{}.
	Codec Codec `yaml:"-" mapstructure:"-"`

	// Auth configures default authentication headers applied to all requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// DisableCookies opts out of the session cookie jar.
	DisableCookies bool `yaml:"disable_cookies" mapstructure:"disable_cookies"`

	// Logger receives per-request debug logs. Nil means silent.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = "restkit/" + Version
	}
	if c.Codec == nil {
		c.Codec = defaultCodec
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	if c.InsecureSkipVerify {
		if c.TLS == nil {
			c.TLS = &TLSConfig{}
		}
		c.TLS.SkipVerify = true
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("restclient: base_url is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("restclient: invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("restclient: base_url scheme must be http or https (got: %q)", u.Scheme)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("restclient: timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
