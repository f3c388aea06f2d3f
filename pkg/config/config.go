package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	// When true the auth middleware resolves the token subject against the
	// user store on every request, so revoked users are cut off immediately.
	// When false identity is built from token claims only.
	AuthRefetchUser bool

	MatchCacheTTLSeconds int
	CacheOpTimeoutMS     int

	RateLimitWindowSeconds int
	RateLimitMax           int

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTIssuer:       getEnv("JWT_ISSUER", "jobmatch"),
		JWTTTLMinutes:   getEnvInt("JWT_TTL_MINUTES", 7*24*60),
		AuthRefetchUser: getEnvBool("AUTH_REFETCH_USER", true),

		MatchCacheTTLSeconds: getEnvInt("MATCH_CACHE_TTL_SECONDS", 3600),
		CacheOpTimeoutMS:     getEnvInt("CACHE_OP_TIMEOUT_MS", 250),

		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 10),

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
