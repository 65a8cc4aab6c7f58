package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"moneta/internal/core"
)

type Config struct {
	// Backend API
	APIBaseURL string
	APITimeout time.Duration

	// Identity provider
	IdentityAPIKey   string
	IdentityEndpoint string
	AuthEmail        string
	AuthPassword     string

	// Set to skip interactive sign-in and act as this user directly.
	UserID string

	// Local preferences
	PrefsDBPath string

	// Defaults applied when the prefs store has no value yet
	DefaultViewMode string
	DefaultCurrency string

	// Background refresh
	RefreshInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),
		APITimeout: getEnvDuration("API_TIMEOUT", 15*time.Second),

		IdentityAPIKey:   getEnv("IDENTITY_API_KEY", ""),
		IdentityEndpoint: getEnv("IDENTITY_ENDPOINT", ""),
		AuthEmail:        getEnv("AUTH_EMAIL", ""),
		AuthPassword:     getEnv("AUTH_PASSWORD", ""),

		UserID: getEnv("USER_ID", ""),

		PrefsDBPath: getEnv("PREFS_DB_PATH", "./data/moneta.db"),

		DefaultViewMode: getEnv("DEFAULT_VIEW_MODE", "monthly"),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "EUR"),

		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", 5*time.Minute),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.APIBaseURL == "" {
		errors = append(errors, "API base URL cannot be empty")
	} else if parsedURL, err := url.Parse(c.APIBaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
	}

	if c.APITimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid API timeout %v: must be at least 1 second", c.APITimeout))
	} else if c.APITimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid API timeout %v: must be at most 1 minute", c.APITimeout))
	}

	// Either a fixed user or full sign-in credentials must be available.
	if c.UserID == "" {
		if c.IdentityAPIKey == "" && c.IdentityEndpoint == "" {
			errors = append(errors, "IDENTITY_API_KEY is required when USER_ID is not set")
		}
		if c.AuthEmail == "" {
			errors = append(errors, "AUTH_EMAIL is required when USER_ID is not set")
		}
		if c.AuthPassword == "" {
			errors = append(errors, "AUTH_PASSWORD is required when USER_ID is not set")
		}
	}

	if c.PrefsDBPath == "" {
		errors = append(errors, "preferences database path cannot be empty")
	} else {
		dir := filepath.Dir(c.PrefsDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create preferences database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if !core.ParseViewMode(c.DefaultViewMode).Valid() {
		errors = append(errors, fmt.Sprintf("invalid default view mode '%s': must be one of [daily weekly monthly]", c.DefaultViewMode))
	}

	if c.DefaultCurrency == "" {
		errors = append(errors, "default currency cannot be empty")
	}

	if c.RefreshInterval < 10*time.Second {
		errors = append(errors, fmt.Sprintf("invalid refresh interval %v: must be at least 10 seconds", c.RefreshInterval))
	} else if c.RefreshInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid refresh interval %v: must be at most 24 hours", c.RefreshInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
