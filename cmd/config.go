package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	GeocodeProviderGoogle   = "google"
	GeocodeProviderOpenCage = "opencage"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr        string
	GeocodeProvider  string
	GoogleMapsAPIKey string
	OpenCageAPIKey   string
	GeocodeCacheTTL  time.Duration

	RabbitMQURL      string
	RabbitMQExchange string

	MartBackfillSchedule string
}

// LoadConfig reads the configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("GEOCODE_CACHE_TTL", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid GEOCODE_CACHE_TTL: %w", err)
	}

	config := Config{
		HTTPPort:             getEnv("HTTP_PORT", "8082"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               getEnv("DB_NAME", "martdelivery"),
		DBSslMode:            getEnv("DB_SSLMODE", "disable"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		GeocodeProvider:      getEnv("GEOCODE_PROVIDER", GeocodeProviderGoogle),
		GoogleMapsAPIKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		OpenCageAPIKey:       os.Getenv("OPENCAGE_API_KEY"),
		GeocodeCacheTTL:      ttl,
		RabbitMQURL:          os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:     getEnv("RABBITMQ_EXCHANGE", "martdelivery.orders"),
		MartBackfillSchedule: os.Getenv("MART_BACKFILL_SCHEDULE"),
	}

	if err = config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN is the postgres:// connection URL built from the DB_* settings. Every part is
// escaped, so empty values and values with spaces or quotes survive parsing.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

func (c Config) validate() error {
	switch c.GeocodeProvider {
	case GeocodeProviderGoogle:
		if c.GoogleMapsAPIKey == "" {
			return errors.New("GOOGLE_MAPS_API_KEY is required for the google geocode provider")
		}
	case GeocodeProviderOpenCage:
		if c.OpenCageAPIKey == "" {
			return errors.New("OPENCAGE_API_KEY is required for the opencage geocode provider")
		}
	default:
		return fmt.Errorf("unknown GEOCODE_PROVIDER %q", c.GeocodeProvider)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
