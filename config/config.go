// Package config provides configuration management for the collabo-go backend.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting. Everything is read once at process start; the
// resulting struct is passed by injection into the components that need it,
// never exposed as ambient global state.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Password verification modes. The hashed mode is the default; plaintext
// comparison exists only for local development and must be requested
// explicitly via PASSWORD_MODE=plaintext.
const (
	// PasswordModeBcrypt stores and verifies salted bcrypt hashes.
	PasswordModeBcrypt = "bcrypt"
	// PasswordModePlaintext compares passwords verbatim. Dev-only.
	PasswordModePlaintext = "plaintext"
)

// DBConfig represents configuration for the database connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
	// MigrationsPath points at the directory of SQL migrations.
	// Empty disables running migrations at startup.
	MigrationsPath string
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	SecretKey           string        // Secret key for signing JWTs
	AccessTokenDuration time.Duration // Lifetime of issued access tokens
	PasswordMode        string        // PasswordModeBcrypt or PasswordModePlaintext
}

// ServerConfig holds HTTP server-related configuration.
type ServerConfig struct {
	Port        string   // Port for the HTTP server
	CORSOrigins []string // Allowed CORS origins
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *DBConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv fetches a required environment variable, appending to the
// errors slice when it is not set. Loading continues so all problems can be
// reported together.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv fetches an optional environment variable with a default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt fetches an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration fetches an optional environment variable parsed as a
// time.Duration ("30m", "1h30s"). Uses defaultValue if not set; appends an
// error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within 5..100. An out-of-range value is
// a tuning mistake, not a reason to refuse to boot: it is clamped and logged.
func clampPoolSize(size int, varName string) int {
	if size < 5 {
		log.Printf("Warning: pool size for %s (%d) is less than minimum 5, clamping to 5", varName, size)
		return 5
	}
	if size > 100 {
		log.Printf("Warning: pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size)
		return 100
	}
	return size
}

// parsePasswordMode validates PASSWORD_MODE. Anything other than the explicit
// plaintext opt-in resolves to bcrypt so a misconfigured deployment can never
// silently downgrade to plaintext comparison.
func parsePasswordMode(value string, errors *[]string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", PasswordModeBcrypt:
		return PasswordModeBcrypt
	case PasswordModePlaintext:
		return PasswordModePlaintext
	default:
		*errors = append(*errors, fmt.Sprintf("invalid value for PASSWORD_MODE: expected '%s' or '%s', got '%s'", PasswordModeBcrypt, PasswordModePlaintext, value))
		return PasswordModeBcrypt
	}
}

// parseCORSOrigins splits a comma-separated origin list.
func parseCORSOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), "DB_POOL_SIZE")
	migrationsPath := getOptionalEnv("MIGRATIONS_PATH", "")

	dbConfig := &DBConfig{
		Host:           dbHost,
		Port:           dbPort,
		User:           dbUser,
		Password:       dbPassword,
		DBName:         dbName,
		PoolSize:       poolSize,
		MigrationsPath: migrationsPath,
	}

	// Auth configuration
	secretKey := getRequiredEnv("SECRET_KEY", &errors)
	accessTokenDuration := getOptionalEnvDuration("ACCESS_TOKEN_DURATION", 30*time.Minute, &errors)
	passwordMode := parsePasswordMode(getOptionalEnv("PASSWORD_MODE", PasswordModeBcrypt), &errors)

	authConfig := &AuthConfig{
		SecretKey:           secretKey,
		AccessTokenDuration: accessTokenDuration,
		PasswordMode:        passwordMode,
	}

	// Server configuration
	serverConfig := &ServerConfig{
		Port:        getOptionalEnv("PORT", "8000"),
		CORSOrigins: parseCORSOrigins(getOptionalEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
