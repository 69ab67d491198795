package config

import (
	"errors"
	"os"
	"time"

	"inventory-service/internal/infrastructure"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	Port        string
	StoreDriver string

	DatabaseURL   string
	MongoURI      string
	MongoDatabase string

	JWTSecret string
	TokenTTL  time.Duration

	RequestTimeout time.Duration

	RateLimitPerSecond int
	RateLimitBurst     int

	NatsURL string

	LogLevel string
	LogJSON  bool
}

// Load reads the configuration from the environment. Secrets have no
// fallback values: a missing JWT secret or store DSN is a startup error.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               infrastructure.GetEnvAsString("PORT", "5000"),
		StoreDriver:        infrastructure.GetEnvAsString("STORE_DRIVER", StoreDriverPostgres),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDatabase:      infrastructure.GetEnvAsString("MONGO_DATABASE", "inventory_db"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           infrastructure.GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		RequestTimeout:     infrastructure.GetEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		RateLimitPerSecond: infrastructure.GetEnvAsInt("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     infrastructure.GetEnvAsInt("RATE_LIMIT_BURST", 10),
		NatsURL:            os.Getenv("NATS_URL"),
		LogLevel:           infrastructure.GetEnvAsString("LOG_LEVEL", "info"),
		LogJSON:            infrastructure.GetEnvAsBool("LOG_JSON", true),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL must be set for the postgres store")
		}
	case StoreDriverMongo:
		if cfg.MongoURI == "" {
			return nil, errors.New("MONGO_URI must be set for the mongo store")
		}
	default:
		return nil, errors.New("STORE_DRIVER must be postgres or mongo")
	}

	return cfg, nil
}
