package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	// MongoDB configuration
	MongoURI        string
	DatabaseName    string
	ToolsCollection string

	// OpenAI configuration
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIMaxTokens int
	OpenAIRPM       int

	// Twilio configuration
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string

	// Server configuration
	Port string

	// When true, external-call failures are logged in full and the user
	// sees a generic apology instead of the raw error text.
	SanitizeErrors bool
}

func LoadConfig() *Config {
	cfg := &Config{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:       getEnv("MONGO_DB_NAME", "aitoolmate"),
		ToolsCollection:    getEnv("MONGO_TOOLS_COLLECTION", "ai_tools"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIMaxTokens:    getEnvInt("OPENAI_MAX_TOKENS", 100),
		OpenAIRPM:          getEnvInt("OPENAI_RPM", 60),
		TwilioAccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppFrom: getEnv("TWILIO_WHATSAPP_NUMBER", ""),
		Port:               getEnv("PORT", "8080"),
		SanitizeErrors:     getEnv("SANITIZE_ERRORS", "false") == "true",
	}

	// Validate required configuration
	if cfg.MongoURI == "" {
		slog.Error("MONGO_URI not set")
	}
	if cfg.OpenAIAPIKey == "" {
		slog.Error("OPENAI_API_KEY not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}
