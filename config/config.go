package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAPIBaseURL = "http://localhost:8000"
	defaultAPITimeout = 10 * time.Second
	defaultPort       = "8080"
	defaultLogLevel   = "info"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	APIBaseURL string
	APITimeout time.Duration
	Port       string
	LogLevel   log.Level
	Location   *time.Location
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	timeout := defaultAPITimeout
	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API_TIMEOUT %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("API_TIMEOUT must be positive, got %s", d)
		}
		timeout = d
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	levelName := os.Getenv("LOG_LEVEL")
	if levelName == "" {
		levelName = defaultLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", levelName, err)
	}

	loc := time.Local
	if tz := os.Getenv("TZ_NAME"); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid TZ_NAME %q: %w", tz, err)
		}
	}

	return &Config{
		APIBaseURL: baseURL,
		APITimeout: timeout,
		Port:       port,
		LogLevel:   level,
		Location:   loc,
	}, nil
}
