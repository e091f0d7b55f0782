package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AI providers understood by AI_PROVIDER.
const (
	ProviderAuto   = "auto"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

const defaultAITimeout = 30 * time.Second

type Config struct {
	// Server
	Port string
	Env  string

	// Generative backend
	AIProvider    string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string
	AIMaxTokens   int
	AITemperature float32
	AITimeout     time.Duration

	// Optional infrastructure
	DatabaseURL string
	RedisURL    string

	// Submissions
	SubmissionsCSV    string
	SubmissionWorkers int
	AdminJWTSecret    string

	// HTTP
	FrontendURL         string
	ChatRateLimitPerMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                getEnvOrDefault("PORT", "3000"),
		Env:                 getEnvOrDefault("ENV", "development"),
		AIProvider:          strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderAuto)),
		OpenAIAPIKey:        getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnvOrDefault("OPENAI_BASE_URL", ""),
		OpenAIModel:         getEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		GeminiAPIKey:        getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:         getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		AIMaxTokens:         getEnvAsIntOrDefault("AI_MAX_TOKENS", 1000),
		AITemperature:       float32(getEnvAsFloatOrDefault("AI_TEMPERATURE", 0.7)),
		AITimeout:           time.Duration(getEnvAsIntOrDefault("AI_TIMEOUT_SECONDS", 30)) * time.Second,
		DatabaseURL:         getEnvOrDefault("DATABASE_URL", ""),
		RedisURL:            getEnvOrDefault("REDIS_URL", ""),
		SubmissionsCSV:      getEnvOrDefault("SUBMISSIONS_CSV", "submissions.csv"),
		SubmissionWorkers:   getEnvAsIntOrDefault("SUBMISSION_WORKERS", 2),
		AdminJWTSecret:      getEnvOrDefault("ADMIN_JWT_SECRET", ""),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", "*"),
		ChatRateLimitPerMin: getEnvAsIntOrDefault("CHAT_RATE_LIMIT_PER_MIN", 30),
	}

	if cfg.AITimeout <= 0 {
		cfg.AITimeout = defaultAITimeout
	}

	return cfg
}

// Provider resolves AI_PROVIDER against the configured keys. A provider
// without its key resolves to ProviderNone.
func (c *Config) Provider() string {
	switch c.AIProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey != "" {
			return ProviderOpenAI
		}
	case ProviderGemini:
		if c.GeminiAPIKey != "" {
			return ProviderGemini
		}
	case ProviderNone:
	default:
		if c.OpenAIAPIKey != "" {
			return ProviderOpenAI
		}
		if c.GeminiAPIKey != "" {
			return ProviderGemini
		}
	}
	return ProviderNone
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
