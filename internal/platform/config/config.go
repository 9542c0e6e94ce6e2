package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogFormat    string

	// Upstream accounting API
	APIBaseURL string
	APITimeout time.Duration

	// Sessions
	SessionDBPath     string
	SessionCookieName string
	SessionTTL        time.Duration

	FrontendBaseURL string

	// Rate limits in ulule/limiter formatted notation, e.g. "5-M"
	LoginRateLimit  string
	ExportRateLimit string

	DefaultCurrency string
	SearchDebounce  time.Duration

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))

	cfg.APIBaseURL = strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	if cfg.APIBaseURL == "" {
		log.Println("Warning: API_BASE_URL environment variable not set.")
	}
	cfg.APITimeout = durationOr(v, "API_TIMEOUT", 15*time.Second)

	cfg.SessionDBPath = v.GetString("SESSION_DB_PATH")
	cfg.SessionCookieName = v.GetString("SESSION_COOKIE_NAME")
	cfg.SessionTTL = durationOr(v, "SESSION_TTL", 24*time.Hour)

	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")
	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.ExportRateLimit = v.GetString("EXPORT_RATE_LIMIT")

	cfg.DefaultCurrency = strings.ToUpper(v.GetString("DEFAULT_CURRENCY"))
	cfg.SearchDebounce = durationOr(v, "SEARCH_DEBOUNCE", 300*time.Millisecond)

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("API_BASE_URL", "http://localhost:4000/api")
	v.SetDefault("API_TIMEOUT", "15s")
	v.SetDefault("SESSION_DB_PATH", "dashboard_sessions.db")
	v.SetDefault("SESSION_COOKIE_NAME", "dash_sid")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:5173")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("EXPORT_RATE_LIMIT", "30-M")
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.SetDefault("SEARCH_DEBOUNCE", "300ms")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

// durationOr parses key as a duration, warning and falling back on bad input.
func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
