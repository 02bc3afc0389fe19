package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfig(t, `
client:
  base_url: https://api.example.com
  timeout: 5s
  user_agent: orders-api/2.1
  insecure_skip_verify: true
logging:
  level: debug
  format: json
`)

	cfg, err := Load(LoaderOptions{ConfigFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Client.BaseURL != "https://api.example.com" {
		t.Errorf("BaseURL = %q", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.Client.Timeout)
	}
	if !cfg.Client.InsecureSkipVerify {
		t.Error("InsecureSkipVerify should be true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_LoggingDefaults(t *testing.T) {
	path := writeConfig(t, `
client:
  base_url: https://api.example.com
`)
	cfg, err := Load(LoaderOptions{ConfigFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
client:
  base_url: https://file.example.com
`)
	t.Setenv("RESTKIT_CLIENT_BASE_URL", "https://env.example.com")

	cfg, err := Load(LoaderOptions{ConfigFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Client.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, want env override", cfg.Client.BaseURL)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("RESTKIT_CLIENT_BASE_URL", "https://env-only.example.com")
	t.Setenv("RESTKIT_LOGGING_LEVEL", "warn")

	cfg, err := Load(LoaderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Client.BaseURL != "https://env-only.example.com" {
		t.Errorf("BaseURL = %q", cfg.Client.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_CustomEnvPrefix(t *testing.T) {
	t.Setenv("ORDERS_CLIENT_BASE_URL", "https://orders.example.com")

	cfg, err := Load(LoaderOptions{EnvPrefix: "ORDERS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Client.BaseURL != "https://orders.example.com" {
		t.Errorf("BaseURL = %q", cfg.Client.BaseURL)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			"missing base_url",
			"client:\n  timeout: 5s\n",
			"base_url",
		},
		{
			"base_url not a url",
			"client:\n  base_url: not-a-url\n",
			"base_url",
		},
		{
			"bad log level",
			"client:\n  base_url: https://x.example.com\nlogging:\n  level: loud\n",
			"logging.level",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.yaml)
			_, err := Load(LoaderOptions{ConfigFile: path})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(LoaderOptions{ConfigFile: "/nonexistent/config.yml"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "svc.env")
	if err := os.WriteFile(envFile, []byte("RESTKIT_CLIENT_BASE_URL=https://dotenv.example.com\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(LoaderOptions{EnvFile: envFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Client.BaseURL != "https://dotenv.example.com" {
		t.Errorf("BaseURL = %q", cfg.Client.BaseURL)
	}
}

func TestClientConfig_Build(t *testing.T) {
	fc := ClientConfig{
		BaseURL:            "https://api.example.com",
		Timeout:            10 * time.Second,
		UserAgent:          "svc/1.0",
		InsecureSkipVerify: true,
		DisableCookies:     true,
	}
	cfg := fc.Build()
	if cfg.BaseURL != fc.BaseURL || cfg.Timeout != fc.Timeout || cfg.UserAgent != fc.UserAgent {
		t.Errorf("Build() = %+v", cfg)
	}
	if !cfg.InsecureSkipVerify || !cfg.DisableCookies {
		t.Error("flags not carried over")
	}
}
