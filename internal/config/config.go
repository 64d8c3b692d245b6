package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Logging
	LogLevel  string
	LogFormat string

	// Redis (optional, shared rate-limit counters)
	RedisURL string

	// Inference
	InferenceProvider string
	InferenceTimeout  time.Duration

	// Hugging Face
	HFAPIKey string
	HFAPIURL string
	HFModel  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Rate limiting
	RateLimitPerMinute int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "3001"),
		Env:                getEnvOrDefault("ENV", "development"),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "console"),
		RedisURL:           getEnvOrDefault("REDIS_URL", ""),
		InferenceProvider:  getEnvOrDefault("INFERENCE_PROVIDER", ProviderHuggingFace),
		InferenceTimeout:   time.Duration(getEnvAsIntOrDefault("INFERENCE_TIMEOUT_SECONDS", 60)) * time.Second,
		HFAPIKey:           getFirstEnv("HF_API_KEY", "VITE_HUGGINGFACE_API_KEY"),
		HFAPIURL:           getEnvOrDefault("HF_API_URL", "https://api-inference.huggingface.co/models"),
		HFModel:            getEnvOrDefault("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
		GeminiAPIKey:       getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:        getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		RateLimitPerMinute: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 30),
		FrontendURL:        getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

// InferenceKey returns the credential for the selected provider, or "" when
// none is configured.
func (c *Config) InferenceKey() string {
	if c.InferenceProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.HFAPIKey
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getFirstEnv returns the first non-empty value among keys.
func getFirstEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	return ""
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
