package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Gateway  GatewayConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
	APIKey   string // single shared key checked by the server interceptor
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	ArtifactDir   string
}

// GatewayConfig holds messaging-gateway configuration, including the
// retry and circuit-breaker discipline applied to every send.
type GatewayConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	MaxRetries        int
	InitialDelay      time.Duration
	MaxDelay          time.Duration
	BackoffMultiplier float64

	FailureThreshold int
	ResetTimeout     time.Duration
}

// IngestConfig holds folder-watch configuration
type IngestConfig struct {
	WatchRoots []string
	Debounce   time.Duration
	Workers    int
	QueueSize  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
			APIKey:   getEnv("API_KEY", ""),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "spa"),
			ArtifactDir:   getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
		},
		Gateway: GatewayConfig{
			BaseURL:           getEnv("GATEWAY_BASE_URL", ""),
			APIKey:            getEnv("GATEWAY_API_KEY", ""),
			Timeout:           getEnvAsDuration("GATEWAY_TIMEOUT", 30*time.Second),
			MaxRetries:        getEnvAsInt("GATEWAY_MAX_RETRIES", 3),
			InitialDelay:      getEnvAsDuration("GATEWAY_INITIAL_DELAY", 1*time.Second),
			MaxDelay:          getEnvAsDuration("GATEWAY_MAX_DELAY", 10*time.Second),
			BackoffMultiplier: getEnvAsFloat64("GATEWAY_BACKOFF_MULTIPLIER", 2.0),
			FailureThreshold:  getEnvAsInt("GATEWAY_FAILURE_THRESHOLD", 5),
			ResetTimeout:      getEnvAsDuration("GATEWAY_RESET_TIMEOUT", 60*time.Second),
		},
		Ingest: IngestConfig{
			WatchRoots: getEnvAsList("WATCH_ROOTS", nil),
			Debounce:   getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			Workers:    getEnvAsInt("INGEST_WORKERS", 4),
			QueueSize:  getEnvAsInt("INGEST_QUEUE_SIZE", 256),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Gateway.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "GATEWAY_BASE_URL is required", ErrInvalidInput)
	}
	if c.Gateway.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GATEWAY_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Gateway.BackoffMultiplier < 1 {
		return NewAppError("CONFIG_ERROR", "GATEWAY_BACKOFF_MULTIPLIER must be >= 1", ErrInvalidInput)
	}
	return nil
}
