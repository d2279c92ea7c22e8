package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort               = "8080"
	defaultLogLevel           = "info"
	defaultNBPBaseURL         = "https://api.nbp.pl/api/"
	defaultDetailsDefaultDays = 30
	defaultRateLimit          = "100-M"
	defaultCORSAllowedOrigins = "*"
	defaultPosthogEndpoint    = "https://eu.i.posthog.com"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// NBP API
	NBPBaseURL     string
	NBPHTTPTimeout time.Duration // 0 disables the client timeout

	DetailsDefaultDays int

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("NBP_BASE_URL", defaultNBPBaseURL)
	viper.SetDefault("NBP_HTTP_TIMEOUT", "0s")
	viper.SetDefault("DETAILS_DEFAULT_DAYS", defaultDetailsDefaultDays)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins)
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", defaultPosthogEndpoint)

	// Environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	logLevelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, cfg.LogLevel.String())
	}

	cfg.NBPBaseURL = viper.GetString("NBP_BASE_URL")
	if cfg.NBPBaseURL == "" {
		cfg.NBPBaseURL = defaultNBPBaseURL
	}

	// Load NBP HTTP timeout (e.g., "10s"); zero means no timeout
	timeoutStr := viper.GetString("NBP_HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout < 0 {
		timeout = 0
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for NBP_HTTP_TIMEOUT ('%s'). Defaulting to no timeout.\n", timeoutStr)
		}
	}
	cfg.NBPHTTPTimeout = timeout

	cfg.DetailsDefaultDays = viper.GetInt("DETAILS_DEFAULT_DAYS")
	if cfg.DetailsDefaultDays <= 0 {
		log.Printf("Warning: Invalid value for DETAILS_DEFAULT_DAYS ('%s'). Defaulting to %d.\n", viper.GetString("DETAILS_DEFAULT_DAYS"), defaultDetailsDefaultDays)
		cfg.DetailsDefaultDays = defaultDetailsDefaultDays
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSAllowedOrigins}
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics are disabled.")
	}

	return cfg, nil
}

// AllowsAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.CORSAllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
