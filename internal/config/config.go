package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	FileRoot    string `env:"FILE_ROOT"` // directory holding asset payload files

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL   string `env:"-"`
	DownloadDir string `env:"DOWNLOAD_DIR"`
	SessionFile string `env:"SESSION_FILE"`
	Version     bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags apply only when the env vars are unset
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (postgres URI or sqlite file path)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign JWT access tokens")
	flag.StringVar(&cfg.FileRoot, "file-root", cfg.FileRoot, "directory holding asset payload files")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base address of the GeoStudio API server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.DownloadDir, "download-dir", cfg.DownloadDir, "directory for downloaded asset files")
	flag.StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "path to the session file (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// validate BaseURL: must be "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = filepath.Join(home, "Downloads")
	}
	if cfg.SessionFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.SessionFile = filepath.Join(dir, "GeoConsole", "session.json")
		}
	}

	return cfg
}
