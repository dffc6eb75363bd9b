package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is the full runtime configuration, sourced from the environment
// with an optional .env file on top.
type Config struct {
	Addr          string
	DatabasePath  string
	JWTSecret     string
	SessionSecret string
	TokenTTL      time.Duration
	BcryptCost    int
}

// Load reads .env if present, then the environment. Defaults suit local
// development; production deployments must set the secrets.
func Load() Config {
	// missing .env is fine, the environment may carry everything
	_ = godotenv.Load()

	return Config{
		Addr:          getEnv("SGSI_ADDR", ":8000"),
		DatabasePath:  getEnv("SGSI_DB_PATH", "sgsi.db"),
		JWTSecret:     getEnv("SGSI_JWT_SECRET", "sgsi-dev-secret-changeme"),
		SessionSecret: getEnv("SGSI_SESSION_SECRET", "sgsi-session-secret-changeme"),
		TokenTTL:      getDuration("SGSI_TOKEN_TTL", 8*time.Hour),
		BcryptCost:    getInt("SGSI_BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
