package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	APIKey         string // API key for authentication
	TrustedProxies []string

	// Artifact generation service
	ArtifactBaseURL        string
	ArtifactAPIKey         string
	ArtifactImageModel     string
	ArtifactTextModel      string
	ArtifactResponseFormat string // "url" or "b64_json"
	ArtifactTimeout        time.Duration

	// Free-tier generation ledger
	GenerationLimit int

	// Local collection mirror
	DataDir string

	// Event dead letter queue
	DeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "lootvault"),

		APIKey: getEnv("API_KEY", ""),

		ArtifactBaseURL:        getEnv("ARTIFACT_BASE_URL", ""),
		ArtifactAPIKey:         getEnv("ARTIFACT_API_KEY", ""),
		ArtifactImageModel:     getEnv("ARTIFACT_IMAGE_MODEL", ""),
		ArtifactTextModel:      getEnv("ARTIFACT_TEXT_MODEL", ""),
		ArtifactResponseFormat: getEnv("ARTIFACT_RESPONSE_FORMAT", "b64_json"),

		DataDir:        getEnv("DATA_DIR", "data"),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", "data/dead_letter_events.jsonl"),
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConns, err := getEnvInt("DB_MAX_CONNS", DefaultDBMaxConns)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns

	limit, err := getEnvInt("GENERATION_LIMIT", DefaultGenerationLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_LIMIT value: %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("GENERATION_LIMIT must not be negative, got %d", limit)
	}
	cfg.GenerationLimit = limit

	timeoutSec, err := getEnvInt("ARTIFACT_TIMEOUT_SECONDS", DefaultArtifactTimeoutSeconds)
	if err != nil {
		return nil, fmt.Errorf("invalid ARTIFACT_TIMEOUT_SECONDS value: %w", err)
	}
	cfg.ArtifactTimeout = time.Duration(timeoutSec) * time.Second

	cfg.TrustedProxies = splitList(getEnv("TRUSTED_PROXIES", ""))

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// splitList splits a comma-separated env value, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
