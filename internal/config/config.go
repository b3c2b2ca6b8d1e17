package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. Signing
// secrets are injected from here into the token manager at construction so
// tests can run with their own secrets.
type Config struct {
	ServerPort  string
	Environment string // "production" enables the Secure cookie flag
	CORSOrigin  string

	PostgresDSN string

	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	TMDBBaseURL string
	TMDBAPIKey  string
}

func Load() *Config {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	return &Config{
		ServerPort:       getEnvDefault("SERVER_PORT", "3000"),
		Environment:      getEnvDefault("APP_ENV", "development"),
		CORSOrigin:       getEnvDefault("CORS_ORIGIN", "http://localhost:5173"),
		PostgresDSN:      getEnv("POSTGRES_DSN"),
		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET"),
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		TMDBBaseURL:      getEnvDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBAPIKey:       getEnv("TMDB_API_KEY"),
	}
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves the value of the environment variable named by the key.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	} else {
		panic("critical config missing: " + key)
	}
}

func getEnvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
