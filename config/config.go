package config

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvProduction is the ENV value that switches the backend to the production URL.
const EnvProduction = "PROD"

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	ENV=PROD
//	PUBLIC_DEV_BACKEND_URL=http://localhost:8080
//	PUBLIC_PROD_BACKEND_URL=http://aodata-api:8080
//	SERVER_PORT=3000
//	SERVER_REQUEST_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
type Config struct {
	Env     string        // Deployment environment, "PROD" or anything else for development
	Server  ServerConfig  // HTTP server configuration
	Backend BackendConfig // Statistics backend endpoints
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // The TCP port the HTTP server will listen on (e.g., "3000")
	RequestTimeout     time.Duration // Upper bound for a single page load, backend calls included
	RateLimitPerMinute int           // Requests allowed per client IP per minute
}

// BackendConfig holds the two statistics backend base URLs.
//
// Only one of them is used at runtime; BackendURL picks it based on Env.
type BackendConfig struct {
	DevURL  string
	ProdURL string
}

// BackendURL returns the production backend URL when Env is "PROD" and the
// development URL otherwise.
func (c Config) BackendURL() string {
	if strings.EqualFold(strings.TrimSpace(c.Env), EnvProduction) {
		return c.Backend.ProdURL
	}
	return c.Backend.DevURL
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or malformed, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("ENV", "")
	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("PUBLIC_DEV_BACKEND_URL", "http://localhost:8080")
	viper.SetDefault("PUBLIC_PROD_BACKEND_URL", "http://aodata-api:8080")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RequestTimeout:     viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Backend: BackendConfig{
			DevURL:  strings.TrimRight(viper.GetString("PUBLIC_DEV_BACKEND_URL"), "/"),
			ProdURL: strings.TrimRight(viper.GetString("PUBLIC_PROD_BACKEND_URL"), "/"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing or malformed ones in a slice.
//   - If any are found, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.RequestTimeout <= 0 {
		missing = append(missing, "SERVER_REQUEST_TIMEOUT")
	}
	if AppConfig.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if !validBackendURL(AppConfig.Backend.DevURL) {
		missing = append(missing, "PUBLIC_DEV_BACKEND_URL")
	}
	if !validBackendURL(AppConfig.Backend.ProdURL) {
		missing = append(missing, "PUBLIC_PROD_BACKEND_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}

func validBackendURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
