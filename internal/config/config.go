package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Datasets
	DataDir      string // Directory containing the reference CSV files
	ManifestFile string // Optional datasets.yaml overriding the default manifest

	// Redis (optional, backs the rate limiter when set)
	RedisURL string

	// Rate limiting
	RateLimitMax int // Requests per minute per IP, 0 disables the limiter

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "MedRef"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		ManifestFile: getEnv("MANIFEST_FILE", "datasets.yaml"),
		RedisURL:     getEnv("REDIS_URL", ""),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "MedRef"),
		SiteTagline: getEnv("SITE_TAGLINE", "Medical reference lookups over static datasets"),
		SiteFooter:  getEnv("SITE_FOOTER", "MedRef - not a substitute for professional medical advice"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
