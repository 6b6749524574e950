package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppEnv string
	Port   string

	// ProviderBaseURL overrides the hourly provider endpoint (tests, proxies).
	ProviderBaseURL string

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// ForecastDays is the forward-looking horizon of the weather summary.
	ForecastDays int

	GeocoderAPIKey string

	// Watchdog probe locations and interval.
	WatchLocations []WatchLocation
	WatchInterval  time.Duration

	LogLevel slog.Level
}

// WatchLocation names a place the watchdog probes periodically.
type WatchLocation struct {
	City    string
	Country string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", "dev")
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.ProviderBaseURL = os.Getenv("PROVIDER_BASE_URL")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")
	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 8)

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	intervalStr := getenvDefault("WATCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WATCH_INTERVAL: %w", err)
	}
	cfg.WatchInterval = interval

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	locs, err := loadWatchLocations()
	if err != nil {
		return nil, err
	}
	cfg.WatchLocations = locs

	return cfg, nil
}

// loadWatchLocations parses the comma-separated WATCH_CITIES and
// WATCH_COUNTRIES lists; both may be empty, which disables the watchdog.
func loadWatchLocations() ([]WatchLocation, error) {
	city := os.Getenv("WATCH_CITIES")
	country := os.Getenv("WATCH_COUNTRIES")
	if city == "" && country == "" {
		return nil, nil
	}

	cities := strings.Split(city, ",")
	countries := strings.Split(country, ",")
	if len(cities) != len(countries) {
		return nil, fmt.Errorf("number of watch cities and countries must be the same")
	}

	var locs []WatchLocation
	for i := range cities {
		locs = append(locs, WatchLocation{
			City:    strings.TrimSpace(cities[i]),
			Country: strings.TrimSpace(countries[i]),
		})
	}
	return locs, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
