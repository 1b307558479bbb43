package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("CRITIC_CLAUDE_API_KEY", "test-key")

	cfg, err := LoadFromEnv(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.DefaultProvider)

	assert.Equal(t, "src", cfg.Scan.RootDir)
	assert.Equal(t, ".go", cfg.Scan.Extension)
	assert.Equal(t, []string{"node_modules", "tests", "reports"}, cfg.Scan.ExcludeDirs)

	assert.Equal(t, filepath.Join("reports", "ai-code-review.md"), cfg.Report.OutputPath)
	assert.Equal(t, "AI Code Review", cfg.Report.Title)

	assert.Equal(t, "https://api.anthropic.com", cfg.Claude.BaseURL)
	assert.Equal(t, "claude-3-7-sonnet-20250219", cfg.Claude.Model)
	assert.Equal(t, 120*time.Second, cfg.Claude.Timeout)
	assert.Equal(t, 0, cfg.Claude.MaxRetries)
	assert.Equal(t, 4096, cfg.Claude.MaxTokens)

	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Endpoint)
	assert.Equal(t, "gemma3", cfg.Ollama.Model)
	assert.Equal(t, 600*time.Second, cfg.Ollama.Timeout)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("CRITIC_DEFAULT_PROVIDER", "ollama")
	t.Setenv("CRITIC_OLLAMA_ENDPOINT", "http://ollama.internal:11434")
	t.Setenv("CRITIC_OLLAMA_MODEL", "codellama")
	t.Setenv("CRITIC_SCAN_ROOT", "lib")
	t.Setenv("CRITIC_SCAN_EXTENSION", ".py")
	t.Setenv("CRITIC_SCAN_EXCLUDE_DIRS", "vendor, .git ,dist")
	t.Setenv("CRITIC_REPORT_PATH", "out/review.md")
	t.Setenv("CRITIC_CLAUDE_TIMEOUT", "30s")
	t.Setenv("CRITIC_CLAUDE_MAX_RETRIES", "2")
	t.Setenv("CRITIC_LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.DefaultProvider)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Ollama.Endpoint)
	assert.Equal(t, "codellama", cfg.Ollama.Model)
	assert.Equal(t, "lib", cfg.Scan.RootDir)
	assert.Equal(t, ".py", cfg.Scan.Extension)
	assert.Equal(t, []string{"vendor", ".git", "dist"}, cfg.Scan.ExcludeDirs)
	assert.Equal(t, "out/review.md", cfg.Report.OutputPath)
	assert.Equal(t, 30*time.Second, cfg.Claude.Timeout)
	assert.Equal(t, 2, cfg.Claude.MaxRetries)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvDotEnvFile(t *testing.T) {
	configDir := t.TempDir()
	envFile := filepath.Join(configDir, ".env")
	content := "CRITIC_CLAUDE_API_KEY=from-dotenv\nCRITIC_SCAN_ROOT=pkg\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	// godotenv sets process env; clean up so other tests see defaults
	t.Cleanup(func() {
		os.Unsetenv("CRITIC_CLAUDE_API_KEY")
		os.Unsetenv("CRITIC_SCAN_ROOT")
	})

	cfg, err := LoadFromEnv(configDir, "")
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.Claude.APIKey)
	assert.Equal(t, "pkg", cfg.Scan.RootDir)
}

func TestValidateProvider(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "claude without API key",
			mutate:  func(c *Config) { c.Claude.APIKey = "" },
			wantErr: "CRITIC_CLAUDE_API_KEY",
		},
		{
			name: "ollama without endpoint",
			mutate: func(c *Config) {
				c.DefaultProvider = "ollama"
				c.Ollama.Endpoint = ""
			},
			wantErr: "CRITIC_OLLAMA_ENDPOINT",
		},
		{
			name:    "unsupported provider",
			mutate:  func(c *Config) { c.DefaultProvider = "gemini" },
			wantErr: "unsupported provider",
		},
		{
			name:    "empty root directory",
			mutate:  func(c *Config) { c.Scan.RootDir = "" },
			wantErr: "root directory",
		},
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.Scan.Extension = "go" },
			wantErr: "extension",
		},
		{
			name:    "empty report path",
			mutate:  func(c *Config) { c.Report.OutputPath = "" },
			wantErr: "report output path",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestGetSet(t *testing.T) {
	original := globalConfig
	t.Cleanup(func() { Set(original) })

	Set(nil)
	_, err := Get()
	require.Error(t, err)

	want := validConfig()
	Set(want)
	got, err := Get()
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestModelFor(t *testing.T) {
	cfg := validConfig()
	cfg.Claude.Model = "claude-test"
	cfg.Ollama.Model = "gemma-test"

	assert.Equal(t, "claude-test", cfg.ModelFor("claude"))
	assert.Equal(t, "gemma-test", cfg.ModelFor("ollama"))
	assert.Equal(t, "", cfg.ModelFor("unknown"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLogLevel("debug").String())
	assert.Equal(t, "WARN", ParseLogLevel("WARN").String())
	assert.Equal(t, "INFO", ParseLogLevel("bogus").String())
}

func validConfig() *Config {
	return &Config{
		DefaultProvider: "claude",
		Scan: ScanConfig{
			RootDir:     "src",
			Extension:   ".go",
			ExcludeDirs: []string{"node_modules"},
		},
		Report: ReportConfig{
			OutputPath: filepath.Join("reports", "ai-code-review.md"),
			Title:      "AI Code Review",
		},
		Claude: ClaudeConfig{
			APIKey:  "test-key",
			BaseURL: "https://api.anthropic.com",
		},
		Ollama: OllamaConfig{
			Endpoint: "http://localhost:11434",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
