package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. The names
// match what the hosting platforms inject (DATABASE_URL, PORT, ...), so a
// deployment needs no flags at all.
func parseEnv(config *Config) {
	if v := os.Getenv("PORT"); v != "" {
		config.EndpointAddr = ":" + v
	}
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		config.SessionSecret = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTTL = d
		}
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		config.BaseURL = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		config.GoogleClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		config.GoogleClientSecret = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		config.AnthropicAPIKey = v
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		config.AIModel = v
	}
	if v := os.Getenv("AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.AIMaxTokens = n
		}
	}
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AITimeout = d
		}
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		config.CORSOrigin = v
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		config.CookieSecure = v == "true"
	}
}
