package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlagSet creates a fresh FlagSet before each NewConfig call so the
// same flags are not registered twice across tests.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("FILE_ROOT", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("DOWNLOAD_DIR", "")
	t.Setenv("SESSION_FILE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.DownloadDir == "" || cfg.SessionFile == "" {
		t.Fatalf("client defaults must be non-empty: DownloadDir=%q, SessionFile=%q", cfg.DownloadDir, cfg.SessionFile)
	}
	if !strings.Contains(cfg.SessionFile, "GeoConsole") {
		t.Fatalf("SessionFile should live under the GeoConsole config dir, got %q", cfg.SessionFile)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected https scheme, got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected 'top', got %q", cfg.AuthSecret)
	}
}

func TestNewConfig_RejectsNonHostPortBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "http://example.com/api")
	t.Setenv("ENABLE_HTTPS", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL with scheme must fall back to default, got %q", cfg.BaseURL)
	}
}
