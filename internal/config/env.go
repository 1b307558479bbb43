package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadFromEnv loads configuration from environment variables
// Parameters:
// - configDir: Directory containing config files (or empty for default)
// - configFilePath: Path to .env file (or empty for default)
func LoadFromEnv(configDir string, configFilePath string) (*Config, error) {
	// Load empty configuration
	cfg := New()

	// If configDir is empty, use the default
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".critic")

		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	cfg.configDir = configDir

	// Default log path is in the config directory
	defaultLogPath := filepath.Join(configDir, "critic.log")

	// Use provided config file path or default
	if configFilePath == "" {
		configFilePath = filepath.Join(configDir, ".env")
	}

	// Check if ENV_FILE_PATH is set to load from a custom .env file
	envFilePath := getEnvString("ENV_FILE_PATH", "")
	if envFilePath != "" {
		// User specified a custom env file path
		err := godotenv.Load(envFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load env file from %s: %w", envFilePath, err)
		}
	} else {
		// Try to load from config directory first
		err := godotenv.Load(configFilePath)
		if err != nil {
			// Then try current directory as fallback
			_ = godotenv.Load() // Ignore errors if file doesn't exist
		}
	}

	// Provider selection
	cfg.DefaultProvider = getEnvString("CRITIC_DEFAULT_PROVIDER", "claude")

	// Scan configuration
	cfg.Scan = ScanConfig{
		RootDir:     getEnvString("CRITIC_SCAN_ROOT", "src"),
		Extension:   getEnvString("CRITIC_SCAN_EXTENSION", ".go"),
		ExcludeDirs: splitList(getEnvString("CRITIC_SCAN_EXCLUDE_DIRS", "node_modules,tests,reports")),
	}

	// Report configuration
	cfg.Report = ReportConfig{
		OutputPath: getEnvString("CRITIC_REPORT_PATH", filepath.Join("reports", "ai-code-review.md")),
		Title:      getEnvString("CRITIC_REPORT_TITLE", "AI Code Review"),
	}

	// Load Claude config
	cfg.Claude = ClaudeConfig{
		APIKey:            getEnvString("CRITIC_CLAUDE_API_KEY", ""),
		BaseURL:           getEnvString("CRITIC_CLAUDE_BASE_URL", "https://api.anthropic.com"),
		APIVersion:        getEnvString("CRITIC_CLAUDE_API_VERSION", "2023-06-01"),
		Model:             getEnvString("CRITIC_CLAUDE_MODEL", "claude-3-7-sonnet-20250219"),
		Timeout:           getEnvDuration("CRITIC_CLAUDE_TIMEOUT", 120*time.Second),
		MaxRetries:        getEnvInt("CRITIC_CLAUDE_MAX_RETRIES", 0),
		MaxTokens:         getEnvInt("CRITIC_CLAUDE_MAX_TOKENS", 4096),
		Temperature:       getEnvFloat("CRITIC_CLAUDE_TEMPERATURE", 0.1),
		TopP:              getEnvFloat("CRITIC_CLAUDE_TOP_P", 0.9),
		TopK:              getEnvInt("CRITIC_CLAUDE_TOP_K", 40),
		RequestsPerMinute: getEnvInt("CRITIC_CLAUDE_REQUESTS_PER_MINUTE", 0),
		BurstLimit:        getEnvInt("CRITIC_CLAUDE_BURST_LIMIT", 1),
	}

	// Load Ollama configuration
	cfg.Ollama = OllamaConfig{
		Endpoint:            getEnvString("CRITIC_OLLAMA_ENDPOINT", "http://localhost:11434"),
		Model:               getEnvString("CRITIC_OLLAMA_MODEL", "gemma3"),
		Timeout:             getEnvDuration("CRITIC_OLLAMA_TIMEOUT", 600*time.Second),
		MaxRetries:          getEnvInt("CRITIC_OLLAMA_MAX_RETRIES", 0),
		MaxTokens:           getEnvInt("CRITIC_OLLAMA_MAX_TOKENS", 4096),
		Temperature:         getEnvFloat("CRITIC_OLLAMA_TEMPERATURE", 0.1),
		MaxIdleConns:        getEnvInt("CRITIC_OLLAMA_MAX_IDLE_CONNS", 100),
		MaxIdleConnsPerHost: getEnvInt("CRITIC_OLLAMA_MAX_IDLE_CONNS_PER_HOST", 100),
		IdleConnTimeout:     getEnvDuration("CRITIC_OLLAMA_IDLE_CONN_TIMEOUT", 120*time.Second),
		RequestsPerMinute:   getEnvInt("CRITIC_OLLAMA_REQUESTS_PER_MINUTE", 0),
		BurstLimit:          getEnvInt("CRITIC_OLLAMA_BURST_LIMIT", 1),
	}

	// Logging Configuration
	cfg.Logging = LoggingConfig{
		Level:      getEnvString("CRITIC_LOG_LEVEL", "info"),
		Format:     getEnvString("CRITIC_LOG_FORMAT", "text"),
		Output:     getEnvString("CRITIC_LOG_OUTPUT", defaultLogPath),
		AddSource:  getEnvBool("CRITIC_LOG_ADD_SOURCE", true),
		TimeFormat: getEnvString("CRITIC_LOG_TIME_FORMAT", time.RFC3339),
	}

	// Validate the configuration
	return cfg, cfg.Validate()
}

// splitList splits a comma-separated env value, trimming whitespace and
// dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// getEnvString returns a string from the environment variable
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an int from the environment variable
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns a bool from the environment variable
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration returns a time.Duration from the environment variable
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvFloat returns a float64 from the environment variable
func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
