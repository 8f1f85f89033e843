package edusphere

import (
	"os"
	"strconv"
	"time"
)

// Config holds every environment-sourced setting. Missing credentials are not
// errors: the affected adapter runs in mock mode instead.
type Config struct {
	Port    string
	LogMode string

	// Generation backend. Gemini is preferred when both keys are present,
	// matching the provider the system was built around.
	GeminiAPIKey   string
	OpenAIAPIKey   string
	BackendTimeout time.Duration

	// Google Workspace OAuth for the Forms adapter.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	TokenFile          string

	// Secret for the OAuth state cookie.
	SessionSecret string
}

// LoadConfig reads configuration from the environment.
func LoadConfig() Config {
	return Config{
		Port:               getEnv("PORT", "8000"),
		LogMode:            getEnv("LOG_MODE", "development"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		BackendTimeout:     time.Duration(getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 60)) * time.Second,
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8000/auth/google/callback"),
		TokenFile:          getEnv("GOOGLE_TOKEN_FILE", "token.json"),
		SessionSecret:      getEnv("SESSION_SECRET", "edusphere-dev-secret"),
	}
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return i
}
