package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the daemon needs, parsed from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SearchURL      string
	ApplicationURL string
	AuthToken      string
	CandidateID    string

	PollInterval        time.Duration
	StatsReportInterval time.Duration

	MaxConcurrentBookings int
	DispatchTimeout       time.Duration
	RetryAttempts         int
	RetryDelay            time.Duration
	AutoBook              bool
	ShutdownGrace         time.Duration

	FilterEnabled    bool
	AllowedLocations []string
	FilterLatitude   float64
	FilterLongitude  float64
	FilterRadiusKm   float64
	FilterHasCenter  bool
}

// LoadConfig reads the daemon configuration from environment variables.
// Unset optional values fall back to defaults; malformed values fail loading
// so the daemon never starts with a half-read configuration.
func LoadConfig() (Config, error) {
	cfg := Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		SearchURL:      os.Getenv("SEARCH_URL"),
		ApplicationURL: os.Getenv("APPLICATION_URL"),
		AuthToken:      os.Getenv("AUTH_TOKEN"),
		CandidateID:    os.Getenv("CANDIDATE_ID"),
	}

	var err error
	if cfg.PollInterval, err = envDuration("POLL_INTERVAL", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.StatsReportInterval, err = envDuration("STATS_REPORT_INTERVAL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.MaxConcurrentBookings, err = envInt("MAX_CONCURRENT_BOOKINGS", 3); err != nil {
		return Config{}, err
	}
	if cfg.DispatchTimeout, err = envDuration("DISPATCH_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RetryAttempts, err = envInt("RETRY_ATTEMPTS", 3); err != nil {
		return Config{}, err
	}
	if cfg.RetryDelay, err = envDuration("RETRY_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AutoBook, err = envBool("AUTO_BOOK", true); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownGrace, err = envDuration("SHUTDOWN_GRACE", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.FilterEnabled, err = envBool("FILTER_ENABLED", false); err != nil {
		return Config{}, err
	}

	if raw := os.Getenv("ALLOWED_LOCATIONS"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				cfg.AllowedLocations = append(cfg.AllowedLocations, trimmed)
			}
		}
	}

	lat, latSet := os.LookupEnv("FILTER_LATITUDE")
	lng, lngSet := os.LookupEnv("FILTER_LONGITUDE")
	if latSet != lngSet {
		return Config{}, fmt.Errorf("FILTER_LATITUDE and FILTER_LONGITUDE must be set together")
	}
	if latSet {
		if cfg.FilterLatitude, err = strconv.ParseFloat(lat, 64); err != nil {
			return Config{}, fmt.Errorf("FILTER_LATITUDE: %w", err)
		}
		if cfg.FilterLongitude, err = strconv.ParseFloat(lng, 64); err != nil {
			return Config{}, fmt.Errorf("FILTER_LONGITUDE: %w", err)
		}
		if cfg.FilterRadiusKm, err = envFloat("FILTER_RADIUS_KM", 50); err != nil {
			return Config{}, err
		}
		cfg.FilterHasCenter = true
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
