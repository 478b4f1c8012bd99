package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the target-selection service.
//
// Fields:
// - Env: The current environment (e.g., local, dev, prod).
// - Port: The port for the HTTP server (targets, health, metrics).
// - ProviderType: The type of reverse-geocoding provider to use (google, nominatim).
// - APIKey: The API key for accessing external services (required for Google).
// - MaxAttempts: The attempt ceiling for the selection loop before falling back.
// - RateLimit: The request-per-second limit applied to the provider.
// - HomeCountry: The country whose localities get state detail instead of a country suffix.
// - CatalogPath: Optional path to a YAML file overriding the built-in fallback catalog.
type Config struct {
	Env          string // Env is the current environment: local, dev, prod.
	Port         int    // Port is the HTTP server port.
	ProviderType string // ProviderType specifies which reverse-geocoding provider to use.
	APIKey       string // The API key for accessing external services.
	MaxAttempts  int    // The attempt ceiling for the selection loop.
	RateLimit    int    // The provider rate limit in requests per second.
	HomeCountry  string // The home country for name formatting.
	CatalogPath  string // Path to a fallback catalog file; empty means built-in.
}

// MustLoad loads the configuration from environment variables and returns a
// Config struct. It panics on malformed values.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("ARTEMIS_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for HTTP server from configuration")
	}

	maxAttempts, err := strconv.Atoi(setDefaultEnv("ARTEMIS_MAX_ATTEMPTS", "12"))
	if err != nil || maxAttempts < 1 {
		panic("failed to parse max attempts from configuration, must be a positive integer")
	}

	rateLimit, err := strconv.Atoi(setDefaultEnv("ARTEMIS_RATE_LIMIT", "1"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer")
	}

	return &Config{
		Env:          setDefaultEnv("ARTEMIS_ENV", "production"),
		Port:         port,
		ProviderType: setDefaultEnv("ARTEMIS_PROVIDER_TYPE", "nominatim"),
		APIKey:       os.Getenv("ARTEMIS_PROVIDER_KEY"),
		MaxAttempts:  maxAttempts,
		RateLimit:    rateLimit,
		HomeCountry:  setDefaultEnv("ARTEMIS_HOME_COUNTRY", "United States"),
		CatalogPath:  os.Getenv("ARTEMIS_CATALOG_PATH"),
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
