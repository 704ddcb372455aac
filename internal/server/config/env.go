package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from environment variables.
// A .env file in the working directory is loaded first if present; real
// environment variables take precedence over it.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address (e.g., ":8080")
//	DATABASE_DSN     PostgreSQL DSN
//	SECRET_KEY       JWT HMAC signing key
//	ACCESS_TOKEN_TTL token lifetime, Go duration syntax (e.g., "20m")
func parseEnv(config *Config) {
	// godotenv never overrides variables that are already set
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenTTL = d
		}
	}
}
