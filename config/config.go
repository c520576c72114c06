package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	StoreDriver string
	MongoURI    string
	DBName      string
	PostgresURI string

	MongoForceTLSConfig bool
	MongoInsecureTLS    bool

	TrustedProxies []string

	RedisAddr          string
	RateLimitPerWindow int
	RateLimitWindow    time.Duration

	ServerHost      string
	ServerPort      string
	APIPrefix       string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func Load() (*Config, error) {
	driver := getEnvOrDefault("STORE_DRIVER", DriverMongo)
	switch driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: want mongo, postgres or memory", driver)
	}

	postgresURI := os.Getenv("POSTGRES_URI")
	if driver == DriverPostgres && postgresURI == "" {
		return nil, fmt.Errorf("POSTGRES_URI environment variable is required for the postgres driver")
	}

	limit, err := strconv.Atoi(getEnvOrDefault("RATE_LIMIT_PER_MINUTE", "120"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: must be a positive integer")
	}

	window, err := time.ParseDuration(getEnvOrDefault("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	shutdown, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	proxies, err := parseProxies(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return nil, err
	}

	return &Config{
		StoreDriver: driver,
		MongoURI:    firstEnv("mongodb://localhost:27017", "MONGO_URL", "MONGO_URI"),
		DBName:      getEnvOrDefault("DB_NAME", "portfolio_db"),
		PostgresURI: postgresURI,

		MongoForceTLSConfig: os.Getenv("MONGO_FORCE_TLS_CONFIG") == "true",
		MongoInsecureTLS:    os.Getenv("MONGO_INSECURE_TLS") == "true",

		TrustedProxies: proxies,

		RedisAddr:          firstEnv("", "REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		RateLimitPerWindow: limit,
		RateLimitWindow:    window,

		ServerHost:      getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		ServerPort:      getEnvOrDefault("PORT", "8001"),
		APIPrefix:       getEnvOrDefault("API_PREFIX", "/api"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		ShutdownTimeout: shutdown,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty variable among keys.
func firstEnv(defaultValue string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return defaultValue
}

// parseProxies splits a comma separated list of IPs or CIDRs.
func parseProxies(val string) ([]string, error) {
	var out []string
	for _, p := range strings.Split(val, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil && net.ParseIP(p) == nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q", p)
		}
		out = append(out, p)
	}
	return out, nil
}
