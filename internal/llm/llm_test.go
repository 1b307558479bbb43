package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/loggy"
)

func TestNewFactory(t *testing.T) {
	logger := loggy.NewNoopLogger()

	tests := []struct {
		name               string
		config             *config.Config
		expectClaudeClient bool
		expectOllamaClient bool
	}{
		{
			name: "claude only",
			config: &config.Config{
				Claude:          config.ClaudeConfig{APIKey: "test-key"},
				Ollama:          config.OllamaConfig{Endpoint: ""},
				DefaultProvider: "claude",
			},
			expectClaudeClient: true,
			expectOllamaClient: false,
		},
		{
			name: "ollama only",
			config: &config.Config{
				Claude:          config.ClaudeConfig{APIKey: ""},
				Ollama:          config.OllamaConfig{Endpoint: "http://localhost:11434"},
				DefaultProvider: "ollama",
			},
			expectClaudeClient: false,
			expectOllamaClient: true,
		},
		{
			name: "both clients",
			config: &config.Config{
				Claude:          config.ClaudeConfig{APIKey: "test-key"},
				Ollama:          config.OllamaConfig{Endpoint: "http://localhost:11434"},
				DefaultProvider: "claude",
			},
			expectClaudeClient: true,
			expectOllamaClient: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory(tt.config, logger)

			if tt.expectClaudeClient {
				assert.NotNil(t, f.claude)
				assert.NotNil(t, f.claudeLimiter)
			} else {
				assert.Nil(t, f.claude)
			}

			if tt.expectOllamaClient {
				assert.NotNil(t, f.ollama)
				assert.NotNil(t, f.ollamaLimiter)
			} else {
				assert.Nil(t, f.ollama)
			}
		})
	}
}

func TestGetDefaultClient(t *testing.T) {
	logger := loggy.NewNoopLogger()

	t.Run("configured provider", func(t *testing.T) {
		cfg := &config.Config{
			Claude:          config.ClaudeConfig{APIKey: "test-key"},
			DefaultProvider: "claude",
		}

		client, clientType, err := NewFactory(cfg, logger).GetDefaultClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, ClientTypeClaude, clientType)
	})

	t.Run("missing credential", func(t *testing.T) {
		cfg := &config.Config{
			Claude:          config.ClaudeConfig{APIKey: ""},
			DefaultProvider: "claude",
		}

		_, _, err := NewFactory(cfg, logger).GetDefaultClient()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing API key")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{
			DefaultProvider: "gemini",
		}

		_, _, err := NewFactory(cfg, logger).GetDefaultClient()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown client type")
	})
}

func TestClaudeAdapterGenerateText(t *testing.T) {
	logger := loggy.NewNoopLogger()

	t.Run("content returned verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"msg_1","model":"claude-test","content":[{"type":"text","text":"feedback text"}]}`))
		}))
		defer server.Close()

		cfg := &config.Config{
			Claude: config.ClaudeConfig{
				APIKey:  "test-key",
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			},
			DefaultProvider: "claude",
		}

		client, _, err := NewFactory(cfg, logger).GetDefaultClient()
		require.NoError(t, err)

		resp, err := client.GenerateText(context.Background(), GenerateRequest{Prompt: "review"})
		require.NoError(t, err)
		assert.Equal(t, "feedback text", resp.Content)
		assert.Equal(t, "claude-test", resp.Model)
	})

	t.Run("empty content is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"msg_1","model":"claude-test","content":[]}`))
		}))
		defer server.Close()

		cfg := &config.Config{
			Claude: config.ClaudeConfig{
				APIKey:  "test-key",
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			},
			DefaultProvider: "claude",
		}

		client, _, err := NewFactory(cfg, logger).GetDefaultClient()
		require.NoError(t, err)

		_, err = client.GenerateText(context.Background(), GenerateRequest{Prompt: "review"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}

func TestNewLimiter(t *testing.T) {
	t.Run("zero rpm means unlimited", func(t *testing.T) {
		limiter := newLimiter(0, 1)
		assert.True(t, limiter.Allow())
		assert.True(t, limiter.Allow())
	})

	t.Run("positive rpm limits", func(t *testing.T) {
		limiter := newLimiter(60, 1)
		assert.True(t, limiter.Allow())
		// Burst of 1 at 1 req/s: the second immediate call is denied
		assert.False(t, limiter.Allow())
	})
}
