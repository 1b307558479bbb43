package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	// Global configuration instance
	globalConfig *Config
	configMutex  sync.RWMutex
)

// Get returns the global configuration instance
// If the configuration has not been initialized, it will return an error
func Get() (*Config, error) {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	return globalConfig, nil
}

// Set sets the global configuration instance
func Set(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = cfg
}

// Config represents the complete application configuration
type Config struct {
	DefaultProvider string // Which provider to use by default (claude or ollama)
	Scan            ScanConfig
	Report          ReportConfig
	Claude          ClaudeConfig
	Ollama          OllamaConfig
	Logging         LoggingConfig
	configDir       string // Internal: Directory where config was loaded from
}

// ScanConfig represents source tree discovery configuration
type ScanConfig struct {
	RootDir     string   // Root directory to scan for source files
	Extension   string   // Source file extension to review (including the dot)
	ExcludeDirs []string // Directory names skipped at any nesting depth
}

// ReportConfig represents report output configuration
type ReportConfig struct {
	OutputPath string // Path of the generated markdown report
	Title      string // Report document title
}

// ClaudeConfig holds Claude API configuration
type ClaudeConfig struct {
	// Authentication and connection
	APIKey     string // Claude API key
	BaseURL    string // Claude API base URL
	APIVersion string // API version to use

	// Model settings
	Model string // Claude model to use

	// Request settings
	Timeout    time.Duration // Request timeout
	MaxRetries int           // Maximum number of retries on failure (0 = single attempt)

	// Generation parameters
	MaxTokens   int     // Max tokens to generate for responses
	Temperature float64 // Default temperature for generation
	TopP        float64 // Top-p sampling parameter
	TopK        int     // Top-k sampling parameter

	// Rate limiting
	RequestsPerMinute int
	BurstLimit        int
}

// OllamaConfig holds configuration specific to the Ollama client
type OllamaConfig struct {
	// Connection settings
	Endpoint            string        // Ollama API endpoint URL
	MaxIdleConns        int           // Maximum number of idle connections
	MaxIdleConnsPerHost int           // Maximum number of idle connections per host
	IdleConnTimeout     time.Duration // How long to keep idle connections alive

	// Model settings
	Model string // Default model to use

	// Request settings
	Timeout    time.Duration // Request timeout
	MaxRetries int           // Maximum number of retries on failure (0 = single attempt)

	// Generation parameters
	MaxTokens   int     // Max tokens to generate for responses
	Temperature float64 // Default temperature for generation

	// Rate limiting
	RequestsPerMinute int
	BurstLimit        int
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	Output     string // stdout, stderr, or file path
	AddSource  bool   // Include source code position in logs
	TimeFormat string // Time format for logs (empty uses RFC3339)
}

// New returns a new empty Config
func New() *Config {
	return &Config{
		DefaultProvider: "",
		Scan:            ScanConfig{},
		Report:          ReportConfig{},
		Claude:          ClaudeConfig{},
		Ollama:          OllamaConfig{},
		Logging:         LoggingConfig{},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.validateProvider(); err != nil {
		return fmt.Errorf("provider config: %w", err)
	}

	if err := c.validateScan(); err != nil {
		return fmt.Errorf("scan config: %w", err)
	}

	if err := c.validateReport(); err != nil {
		return fmt.Errorf("report config: %w", err)
	}

	if err := c.validateLogging(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// validateProvider checks the selected provider and its credentials.
// A missing credential for the selected provider is a fatal precondition:
// the run must not start reading files or issuing requests without it.
func (c *Config) validateProvider() error {
	switch c.DefaultProvider {
	case "claude":
		if c.Claude.APIKey == "" {
			return fmt.Errorf("CRITIC_CLAUDE_API_KEY is required when the claude provider is selected")
		}
		if c.Claude.BaseURL == "" {
			return fmt.Errorf("claude base URL must not be empty")
		}
	case "ollama":
		if c.Ollama.Endpoint == "" {
			return fmt.Errorf("CRITIC_OLLAMA_ENDPOINT is required when the ollama provider is selected")
		}
	default:
		return fmt.Errorf("unsupported provider %q (expected claude or ollama)", c.DefaultProvider)
	}

	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.RootDir == "" {
		return fmt.Errorf("root directory must not be empty")
	}

	if c.Scan.Extension == "" || !strings.HasPrefix(c.Scan.Extension, ".") {
		return fmt.Errorf("source extension must start with a dot, got %q", c.Scan.Extension)
	}

	return nil
}

func (c *Config) validateReport() error {
	if c.Report.OutputPath == "" {
		return fmt.Errorf("report output path must not be empty")
	}

	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}

	return nil
}

// ParseLogLevel parses a log level string to a slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigDir returns the directory the configuration was loaded from
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ReportDir returns the directory portion of the report output path
func (c *Config) ReportDir() string {
	return filepath.Dir(c.Report.OutputPath)
}

// ModelFor returns the configured model for the given provider
func (c *Config) ModelFor(provider string) string {
	switch provider {
	case "claude":
		return c.Claude.Model
	case "ollama":
		return c.Ollama.Model
	default:
		return ""
	}
}
