package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/zaidasim/swadesh/internal/flagx"
	"github.com/zaidasim/swadesh/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "168h" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr       string         `json:"endpoint_addr"`
	DatabaseDSN        string         `json:"database_dsn"`
	SessionSecret      string         `json:"session_secret"`
	SessionTTL         timex.Duration `json:"session_ttl"`
	BaseURL            string         `json:"base_url"`
	GoogleClientID     string         `json:"google_client_id"`
	GoogleClientSecret string         `json:"google_client_secret"`
	AnthropicAPIKey    string         `json:"anthropic_api_key"`
	AIModel            string         `json:"ai_model"`
	AIMaxTokens        int64          `json:"ai_max_tokens"`
	AITimeout          timex.Duration `json:"ai_timeout"`
	CORSOrigin         string         `json:"cors_origin"`
	CookieSecure       bool           `json:"cookie_secure"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. Unset fields keep
// their current values. An unreadable or invalid file panics: a requested
// config file that cannot be applied is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.SessionTTL.Duration != 0 {
		config.SessionTTL = time.Duration(c.SessionTTL.Duration)
	}
	if c.BaseURL != "" {
		config.BaseURL = c.BaseURL
	}
	if c.GoogleClientID != "" {
		config.GoogleClientID = c.GoogleClientID
	}
	if c.GoogleClientSecret != "" {
		config.GoogleClientSecret = c.GoogleClientSecret
	}
	if c.AnthropicAPIKey != "" {
		config.AnthropicAPIKey = c.AnthropicAPIKey
	}
	if c.AIModel != "" {
		config.AIModel = c.AIModel
	}
	if c.AIMaxTokens != 0 {
		config.AIMaxTokens = c.AIMaxTokens
	}
	if c.AITimeout.Duration != 0 {
		config.AITimeout = time.Duration(c.AITimeout.Duration)
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
	if c.CookieSecure {
		config.CookieSecure = true
	}
}
