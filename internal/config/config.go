package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig carries the token signing material. All four fields are
// required; Load fails when any of them is missing so a misconfigured
// process never starts serving requests.
type JWTConfig struct {
	Secret        string
	Algorithm     string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// AdminConfig describes the account seeded on first start when the
// database is empty.
type AdminConfig struct {
	UserName  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

func Load() (*Config, error) {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	readTimeout, err := getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	accessExpiry, err := getDurationEnv("JWT_ACCESS_EXPIRY", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	refreshExpiry, err := getDurationEnv("JWT_REFRESH_EXPIRY", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "stockmanager"),
			Password: getEnv("DB_PASSWORD", "stockmanager"),
			DBName:   getEnv("DB_NAME", "stockmanagerdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:        os.Getenv("JWT_SECRET"),
			Algorithm:     getEnv("JWT_ALGORITHM", "HS256"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Admin: AdminConfig{
			UserName:  getEnv("ADMIN_USER_NAME", "admin"),
			Password:  getEnv("ADMIN_PASSWORD", "admin123"),
			FirstName: getEnv("ADMIN_FIRST_NAME", "Admin"),
			LastName:  getEnv("ADMIN_LAST_NAME", "User"),
			Email:     getEnv("ADMIN_EMAIL", "admin@local.com"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string

	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.JWT.Algorithm == "" {
		missing = append(missing, "JWT_ALGORITHM")
	}
	if c.JWT.AccessExpiry <= 0 {
		missing = append(missing, "JWT_ACCESS_EXPIRY")
	}
	if c.JWT.RefreshExpiry <= 0 {
		missing = append(missing, "JWT_REFRESH_EXPIRY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv falls back to the default only when the variable is
// unset. A set-but-unparsable value is a startup error, never a silent
// fallback.
func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %w", key, err)
	}
	return duration, nil
}
