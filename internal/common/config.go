package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Azure  AzureConfig
	Limits LimitsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// AzureConfig holds the Azure OpenAI connection settings. The deployment
// identifier is the name configured on the Azure resource, not a public
// model name.
type AzureConfig struct {
	APIKey      string
	Endpoint    string
	APIVersion  string
	Deployment  string
	Temperature float32
	Timeout     time.Duration
}

// LimitsConfig holds request size limits
type LimitsConfig struct {
	MaxUploadBytes int64
	MaxTextBytes   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Azure: AzureConfig{
			APIKey:      getEnv("AZURE_OPENAI_API_KEY", ""),
			Endpoint:    getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIVersion:  getEnv("AZURE_OPENAI_API_VERSION", ""),
			Deployment:  getEnv("AZURE_OPENAI_DEPLOYMENT", ""),
			Temperature: getEnvAsFloat32("AZURE_OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("AZURE_OPENAI_TIMEOUT", 45*time.Second),
		},
		Limits: LimitsConfig{
			MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 20<<20),
			MaxTextBytes:   getEnvAsInt("MAX_TEXT_BYTES", 512<<10),
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
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

// Validate checks the loaded configuration. Every Azure value is required;
// startup must abort before serving if any is missing.
func (c *Config) Validate() error {
	if c.Azure.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Azure.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_OPENAI_ENDPOINT is required", ErrInvalidInput)
	}
	if c.Azure.APIVersion == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_OPENAI_API_VERSION is required", ErrInvalidInput)
	}
	if c.Azure.Deployment == "" {
		return NewAppError("CONFIG_ERROR", "AZURE_OPENAI_DEPLOYMENT is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}
