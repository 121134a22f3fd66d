// Package config loads server configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	Images  ImagesConfig
	Display DisplayConfig
	DBPath  string
	// ServerURL is the externally visible base URL, drawn as the watermark
	// label on every generated screen.
	ServerURL string
	LogLevel  string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         int
	ReadTimeout  int
	WriteTimeout int
}

// ImagesConfig holds image pipeline configuration.
type ImagesConfig struct {
	Dir string
	// EncoderTimeout bounds a single external quantization tool run, in seconds.
	EncoderTimeout int
}

// DisplayConfig holds default panel parameters, overridable per request.
type DisplayConfig struct {
	Width       int
	Height      int
	RefreshRate int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvAsInt("PORT", 8000),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
		},
		Images: ImagesConfig{
			Dir:            getEnv("IMAGES_DIR", "static/images"),
			EncoderTimeout: getEnvAsInt("ENCODER_TIMEOUT", 10),
		},
		Display: DisplayConfig{
			Width:       getEnvAsInt("DISPLAY_WIDTH", 800),
			Height:      getEnvAsInt("DISPLAY_HEIGHT", 480),
			RefreshRate: getEnvAsInt("REFRESH_RATE", 60),
		},
		DBPath:    getEnv("DB_PATH", "trmnl.db"),
		ServerURL: getEnv("SERVER_URL", "http://localhost:8000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
