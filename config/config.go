package config

import "os"

type Config struct {
	ListenAddr string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	Model         string
	VectorStoreID string
	MaxResults    int
}

// Load reads configuration from the environment. Credentials are not
// validated here: a missing or invalid key surfaces as a failure on the
// first outbound call, not at startup.
func Load() Config {
	return Config{
		ListenAddr:    getEnv("DOCCHAT_ADDR", ":8080"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:         getEnv("DOCCHAT_MODEL", "gpt-4o-mini"),
		VectorStoreID: getEnv("VECTOR_STORE_ID", ""),
		MaxResults:    5,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
