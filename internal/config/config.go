package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	DatabaseURL        string
	SiteBaseURL        string
	CORSAllowedOrigins []string

	// Restaurant identity shown to chat customers
	RestaurantName    string
	RestaurantPhone   string
	RestaurantAddress string

	// Gemini chat configuration
	GeminiAPIKey       string
	GeminiModelID      string
	ChatMaxRetries     int
	ChatRetryBaseDelay time.Duration
	ChatMaxTokens      int

	// Supabase auth (bearer tokens issued by GoTrue)
	SupabaseJWTSecret string

	// Stripe payments
	StripeSecretKey string

	// SendGrid email
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// Redis menu cache (optional)
	RedisAddr     string
	RedisPassword string
	MenuCacheTTL  time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "3001"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SiteBaseURL:        strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:5173"), "/"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		RestaurantName:    getEnv("RESTAURANT_NAME", "Smart Restaurant Hub"),
		RestaurantPhone:   getEnv("RESTAURANT_PHONE", "207-8767-452"),
		RestaurantAddress: getEnv("RESTAURANT_ADDRESS", "2443 Oak Ridge, Leander, TX"),

		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:      getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		ChatMaxRetries:     getEnvAsInt("CHAT_MAX_RETRIES", 3),
		ChatRetryBaseDelay: getEnvAsDuration("CHAT_RETRY_BASE_DELAY", time.Second),
		ChatMaxTokens:      getEnvAsInt("CHAT_MAX_TOKENS", 256),

		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", ""),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "reservations@smartrestauranthub.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Smart Restaurant Hub"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		MenuCacheTTL:  getEnvAsDuration("MENU_CACHE_TTL", 5*time.Minute),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
