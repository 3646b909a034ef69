package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Categories lists the feed categories the upstream API accepts.
var Categories = []string{"trending", "popular", "top_rated", "now_playing", "upcoming"}

// Load loads the configuration from file. A missing config file is not an
// error unless an explicit path was given; defaults and environment variables
// are enough to run.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// The upstream base URL can be overridden without a config file.
	_ = v.BindEnv("api.base_url", "API_BASE")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".reelgrid"))
		}

		// Check /etc
		v.AddConfigPath("/etc/reelgrid/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Upstream API defaults
	v.SetDefault("api.base_url", "https://movie-recommender-system-1-9njm.onrender.com")
	v.SetDefault("api.timeout", 25*time.Second)
	v.SetDefault("api.cache_ttl", 30*time.Second)

	// Server defaults
	v.SetDefault("server.addr", ":8080")

	// UI defaults
	v.SetDefault("ui.columns", 6)
	v.SetDefault("ui.category", "trending")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if u, err := url.Parse(cfg.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL: %q", cfg.API.BaseURL)
	}

	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if cfg.API.CacheTTL < 0 {
		return fmt.Errorf("api.cache_ttl must not be negative")
	}

	if cfg.UI.Columns < 4 || cfg.UI.Columns > 8 {
		return fmt.Errorf("ui.columns must be between 4 and 8, got %d", cfg.UI.Columns)
	}

	if !ValidCategory(cfg.UI.Category) {
		return fmt.Errorf("invalid ui.category: %s", cfg.UI.Category)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ValidCategory reports whether the upstream API knows the feed category.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
