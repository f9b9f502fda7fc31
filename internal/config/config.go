// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. The session secret is an explicit configuration input
// so that sessions survive process restarts; it is never generated at startup.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	DatabasePath     string // path to the SQLite database file
	CatAPIURL        string // upstream breeds endpoint
	AuthEnabled      bool   // when false, register/login/logout routes are not mounted
	SessionSecret    string // secret used to sign session cookies (required when auth is enabled)
	SessionTTLMin    int    // session lifetime in minutes
	PBKDF2Iterations int    // PBKDF2 iteration count for password hashing
}

// DefaultCatAPIURL is the fixed public breeds endpoint.
const DefaultCatAPIURL = "https://api.thecatapi.com/v1/breeds"

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory. Missing required values cause the
// program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Env:              envStr("APP_ENV", "dev"),
		Port:             envStr("APP_PORT", "8080"),
		DatabasePath:     envStr("DATABASE_PATH", "database.db"),
		CatAPIURL:        envStr("CAT_API_URL", DefaultCatAPIURL),
		AuthEnabled:      envBool("AUTH_ENABLED", true),
		SessionTTLMin:    envInt("SESSION_TTL_MIN", 720),
		PBKDF2Iterations: envInt("PBKDF2_ITERATIONS", 600000),
	}
	if cfg.AuthEnabled {
		cfg.SessionSecret = must("SESSION_SECRET")
	} else {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return def
}
