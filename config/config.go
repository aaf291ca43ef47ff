package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, loaded once at startup from the
// environment (optionally seeded from a .env file).
type Config struct {
	HTTPAddr    string
	Environment string

	DatabaseURL string

	JWTIssuer         string
	AccessSecret      string
	RefreshSecret     string
	AccessTokenTTL    time.Duration
	RefreshTokenTTL   time.Duration
	MinPasswordLength int

	GoogleClientID string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromAddress  string
	FromName     string
	FrontendURL  string

	CookieDomain string
	CookieSecure bool
}

// Load reads the environment into a Config. A missing .env file is fine; the
// environment itself is authoritative. Secrets are not validated here so the
// caller can decide what is fatal.
func Load() Config {
	_ = godotenv.Load()

	environment := getEnv("APP_ENV", "development")
	return Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		Environment: environment,

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTIssuer:         getEnv("JWT_ISSUER", "internlink"),
		AccessSecret:      os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret:     os.Getenv("JWT_REFRESH_SECRET"),
		AccessTokenTTL:    getDuration("ACCESS_TOKEN_TTL", 7*24*time.Hour),
		RefreshTokenTTL:   getDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		MinPasswordLength: getInt("MIN_PASSWORD_LENGTH", 6),

		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		FromAddress:  getEnv("EMAIL_FROM", "no-reply@internlink.local"),
		FromName:     getEnv("EMAIL_FROM_NAME", "InternLink"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),

		CookieDomain: os.Getenv("COOKIE_DOMAIN"),
		CookieSecure: getEnv("COOKIE_SECURE", boolDefault(environment == "production")) == "true",
	}
}

func (c Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func boolDefault(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
