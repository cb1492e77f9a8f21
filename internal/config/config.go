package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the full service configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Logging LoggingConfig
	Email   EmailConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port    string
	Host    string
	Env     string
	BaseURL string
}

// StorageConfig selects the state store backend. Type is "file" or
// "redis"; Key is the well-known key the whole state blob lives under.
type StorageConfig struct {
	Type string
	Path string
	Key  string
}

// RedisConfig holds the redis connection settings.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level  string
	Format string
}

// EmailConfig holds the email delivery settings. Delivery is optional;
// with an empty API key the email endpoint reports unavailable.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
}

// Load reads configuration from environment variables, with an optional
// .env file.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Env:     getEnv("SERVER_ENV", "development"),
			BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Storage: StorageConfig{
			Type: getEnv("STORAGE_TYPE", "file"),
			Path: getEnv("STORAGE_PATH", "./data/invoice-app-data.json"),
			Key:  getEnv("STORAGE_KEY", "invoice-app-data"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("EMAIL_FROM", "onboarding@resend.dev"),
		},
	}

	return config, nil
}

// getEnv returns an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable parsed as an integer.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetRedisAddr returns the redis host:port address.
func (c *Config) GetRedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}
