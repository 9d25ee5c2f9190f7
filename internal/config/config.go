package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide configuration resolved once at startup and passed
// explicitly into the components that need it.
type Config struct {
	Server     ServerConfig
	Extraction ExtractionConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type ExtractionConfig struct {
	APIKey string
	Model  string
}

type LoggerConfig struct {
	Level string
}

// Load reads configuration from the process environment, optionally loading a
// local .env file first. The extraction API key is required.
func Load() (*Config, error) {
	// Try to load .env from the current directory or the project root.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("config: GEMINI_API_KEY is not set")
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "15"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "60"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Extraction: ExtractionConfig{
			APIKey: apiKey,
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
