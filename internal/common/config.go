package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Paths      PathsConfig
	Database   DatabaseConfig
	Extraction ExtractionConfig
	Generation GenerationConfig
}

// PathsConfig holds the directory layout for a batch run
type PathsConfig struct {
	InputDir  string
	OutputDir string
	CacheDir  string
	TempDir   string
}

// DatabaseConfig holds the run-history store configuration
type DatabaseConfig struct {
	DSN         string
	DialTimeout time.Duration
}

// ExtractionConfig holds document-parse backend configuration
type ExtractionConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GenerationConfig holds text-generation backend configuration
type GenerationConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	Temperature    float32
	Timeout        time.Duration
	MaxPromptChars int
	MaxConcurrent  int
	DocWorkers     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:  getEnv("INPUT_DIR", "input"),
			OutputDir: getEnv("OUTPUT_DIR", "output"),
			CacheDir:  getEnv("EXTRACTION_CACHE_DIR", "extraction_results"),
			TempDir:   getEnv("TEMP_DIR", os.TempDir()),
		},
		Database: DatabaseConfig{
			DSN:         getEnv("DB_URL", ""),
			DialTimeout: getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Extraction: ExtractionConfig{
			BaseURL: getEnv("VISION_AGENT_BASE_URL", "https://api.va.landing.ai/v1"),
			APIKey:  getEnv("VISION_AGENT_API_KEY", ""),
			Timeout: getEnvAsDuration("VISION_AGENT_TIMEOUT", 2*time.Minute),
		},
		Generation: GenerationConfig{
			BaseURL:        getEnv("GOOGLE_AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:         getEnv("GOOGLE_AI_STUDIO_API_KEY", ""),
			Model:          getEnv("GOOGLE_AI_MODEL", "gemini-1.5-flash"),
			Temperature:    getEnvAsFloat32("GOOGLE_AI_TEMPERATURE", 0.0),
			Timeout:        getEnvAsDuration("GOOGLE_AI_TIMEOUT", 90*time.Second),
			MaxPromptChars: getEnvAsInt("MAX_PROMPT_CHARS", 20000),
			MaxConcurrent:  getEnvAsInt("MAX_CONCURRENT_GENERATIONS", 2),
			DocWorkers:     getEnvAsInt("DOC_WORKERS", 1),
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Paths.InputDir == "" {
		return NewAppError("CONFIG_ERROR", "INPUT_DIR is required", ErrInvalidInput)
	}
	if c.Paths.OutputDir == "" {
		return NewAppError("CONFIG_ERROR", "OUTPUT_DIR is required", ErrInvalidInput)
	}
	if c.Generation.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GOOGLE_AI_STUDIO_API_KEY is required", ErrInvalidInput)
	}
	if c.Generation.MaxPromptChars <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_PROMPT_CHARS must be positive", ErrInvalidInput)
	}
	return nil
}
