package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime settings read from the environment.
type Config struct {
	DBPath string
	// CatalogPath is a JSON or YAML catalog file. Empty means the catalog
	// bundled with the binary.
	CatalogPath string
	// Location decides which civil day is "today".
	Location      *time.Location
	LogUseCases   bool
	UpcomingLimit int
}

// DefaultConfig returns a Config with sensible defaults. DBPath is left
// empty; LoadConfig fills it from the home directory.
func DefaultConfig() Config {
	return Config{
		Location:      time.Local,
		UpcomingLimit: 5,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values. Malformed booleans and numbers are
// ignored. An unknown time zone is an error since it would silently shift
// every today/upcoming answer.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("UTSAV_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".utsav", "utsav.db")
	}

	cfg.CatalogPath = os.Getenv("UTSAV_CATALOG")

	if v := os.Getenv("UTSAV_TZ"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return cfg, fmt.Errorf("loading UTSAV_TZ %q: %w", v, err)
		}
		cfg.Location = loc
	}
	if v := os.Getenv("UTSAV_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("UTSAV_UPCOMING_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UpcomingLimit = n
		}
	}

	return cfg, nil
}
