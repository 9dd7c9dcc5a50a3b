package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session backends soportados.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// DefaultNamespace es la clave bajo la que se persiste la sesión.
const DefaultNamespace = "medtap-auth"

// Config holds all configuration for the client
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds the local UI server configuration
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// APIConfig describes the remote MedTap service
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig selects where the session is persisted
type SessionConfig struct {
	Backend   string
	Dir       string
	DSN       string
	Namespace string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
	App    string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// Load loads configuration from environment variables (and .env when present)
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file could not be read: %v", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnv("MEDTAP_ADDR", "127.0.0.1:5173"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("MEDTAP_API_URL", "http://localhost:8080/api/v1"), "/"),
			Timeout: getDurationEnv("MEDTAP_API_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			Backend:   strings.ToLower(getEnv("SESSION_BACKEND", BackendFile)),
			Dir:       getEnv("SESSION_DIR", defaultSessionDir()),
			DSN:       getEnv("SESSION_DSN", ""),
			Namespace: getEnv("SESSION_NAMESPACE", DefaultNamespace),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "medtap"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", nil),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("MEDTAP_API_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	if u.Scheme != "https" && !isLoopback(u.Hostname()) {
		log.Printf("Warning: MEDTAP_API_URL uses %s for a non-local host; bearer tokens travel unencrypted", u.Scheme)
	}

	switch c.Session.Backend {
	case BackendFile:
		if strings.TrimSpace(c.Session.Dir) == "" {
			return fmt.Errorf("SESSION_DIR is required for the file backend")
		}
	case BackendMemory:
	case BackendPostgres:
		if strings.TrimSpace(c.Session.DSN) == "" {
			return fmt.Errorf("SESSION_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}

	if strings.TrimSpace(c.Session.Namespace) == "" {
		return fmt.Errorf("SESSION_NAMESPACE must not be empty")
	}
	return nil
}

func isLoopback(host string) bool {
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".medtap"
	}
	return filepath.Join(home, ".medtap")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
