package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/restkit-go/restkit/logger"
	"github.com/restkit-go/restkit/restclient"
	"github.com/restkit-go/restkit/security"
)

const defaultEnvPrefix = "RESTKIT"

// envKeys are the flat keys bound for environment overrides.
var envKeys = []string{
	"client.base_url",
	"client.timeout",
	"client.user_agent",
	"client.insecure_skip_verify",
	"client.disable_cookies",
	"client.tls.skip_verify",
	"client.tls.ca_file",
	"client.tls.server_name",
	"logging.level",
	"logging.format",
	"logging.output",
}

// FileConfig is the on-disk configuration for an embedding application.
type FileConfig struct {
	Client  ClientConfig  `yaml:"client" mapstructure:"client"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ClientConfig mirrors restclient.Config for file and env loading.
type ClientConfig struct {
	BaseURL            string              `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	Timeout            time.Duration       `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`
	UserAgent          string              `yaml:"user_agent" mapstructure:"user_agent"`
	Headers            map[string]string   `yaml:"headers" mapstructure:"headers"`
	InsecureSkipVerify bool                `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`
	TLS                *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
	DisableCookies     bool                `yaml:"disable_cookies" mapstructure:"disable_cookies"`
}

// Build converts the loaded settings into a restclient.Config.
func (c ClientConfig) Build() restclient.Config {
	return restclient.Config{
		BaseURL:            c.BaseURL,
		Timeout:            c.Timeout,
		UserAgent:          c.UserAgent,
		Headers:            c.Headers,
		InsecureSkipVerify: c.InsecureSkipVerify,
		TLS:                c.TLS,
		DisableCookies:     c.DisableCookies,
	}
}

// LoaderOptions configures Load.
type LoaderOptions struct {
	// ConfigFile is the YAML file to read. Empty means env-only.
	ConfigFile string
	// EnvFile is a dotenv file loaded before reading the environment.
	// Empty means ".env" in the working directory, if present.
	EnvFile string
	// EnvPrefix overrides the RESTKIT env prefix.
	EnvPrefix string
}

// Load reads configuration from the YAML file and the environment, applies
// defaults, and validates the result.
func Load(opts LoaderOptions) (*FileConfig, error) {
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = defaultEnvPrefix
	}

	loadDotenv(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	}

	var cfg FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Logging.ApplyDefaults()

	if err := validateStruct(&cfg.Client); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// loadDotenv loads the dotenv file when one exists; a missing default file
// is not an error.
func loadDotenv(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}
