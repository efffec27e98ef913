package config

import (
	"os"
	"strconv"
	"time"
)

// Mode selects how the service runs. It is decided once at startup and never
// re-derived per request.
type Mode string

const (
	// ModeProduction requires a reachable Postgres store.
	ModeProduction Mode = "production"
	// ModeDemo runs without any backing store; only the demo key authenticates.
	ModeDemo Mode = "demo"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Demo     DemoConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	Env     string
	Mode    Mode
	BaseURL string // public base URL used to build verification links
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration. An empty URL disables the Redis
// rate window and the store-backed count is used instead.
type RedisConfig struct {
	URL      string
	Password string
}

// AdminConfig holds the operator credentials and token settings for the
// provisioning endpoints.
type AdminConfig struct {
	Email        string
	PasswordHash string // bcrypt hash of the admin password
	JWTSecret    string
	TokenExpiry  time.Duration
}

// DemoConfig holds the demo-mode sentinel key.
type DemoConfig struct {
	APIKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			Env:     getEnv("SERVER_ENV", "development"),
			Mode:    parseMode(getEnv("SERVER_MODE", string(ModeProduction))),
			BaseURL: getEnv("SERVER_BASE_URL", "https://goldenseed.io"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "goldenseed"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@goldenseed.io"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("ADMIN_JWT_SECRET", "change-this-in-production"),
			TokenExpiry:  getEnvAsDuration("ADMIN_TOKEN_EXPIRY", time.Hour),
		},
		Demo: DemoConfig{
			APIKey: getEnv("DEMO_API_KEY", "gs_demo_key_12345"),
		},
	}
}

func parseMode(s string) Mode {
	if s == string(ModeDemo) {
		return ModeDemo
	}
	return ModeProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
