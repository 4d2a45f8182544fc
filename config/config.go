package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	SupabaseURL        string
	SupabaseServiceKey string
	// SupabaseJWTSecret enables local verification of access tokens. When empty, tokens
	// are resolved against the Supabase auth server.
	SupabaseJWTSecret string
	JWTIssuer         string

	// DatabaseURL is the direct Postgres connection used by migrations and readiness.
	DatabaseURL string

	LogLevel         string
	CORSAllowOrigins string
	BodyLimitBytes   int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		SupabaseURL:        strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		SupabaseJWTSecret:  os.Getenv("SUPABASE_JWT_SECRET"),
		JWTIssuer:          os.Getenv("JWT_ISSUER"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
		BodyLimitBytes:     getEnvInt("BODY_LIMIT_BYTES", 1<<20),
	}
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
