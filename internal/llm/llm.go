// Package llm provides a provider-neutral interface for text generation
// along with a factory that selects and rate-limits the configured provider.
package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tildaslashalef/critic/internal/claude"
	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/ollama"
)

// ClientType identifies the underlying provider
type ClientType string

const (
	ClientTypeClaude ClientType = "claude"
	ClientTypeOllama ClientType = "ollama"
)

// GenerateRequest represents a request for text generation
type GenerateRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	System      string  `json:"system,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// GenerateResponse represents a response from a text generation request
type GenerateResponse struct {
	Content string `json:"content"`
	Model   string `json:"model"`
}

// Client defines the interface for LLM clients
type Client interface {
	// GenerateText sends a blocking text generation request
	GenerateText(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// Factory creates LLM clients based on configuration
type Factory struct {
	config *config.Config
	claude *claude.Client
	ollama *ollama.Client
	logger *loggy.Logger

	claudeLimiter *rate.Limiter
	ollamaLimiter *rate.Limiter
}

// newLimiter creates a rate limiter from RPM and Burst
func newLimiter(rpm, burst int) *rate.Limiter {
	if rpm <= 0 {
		// If RPM is zero or negative, allow infinite rate (no limiting)
		return rate.NewLimiter(rate.Inf, burst)
	}
	// Calculate rate per second
	r := rate.Limit(float64(rpm) / 60.0)
	// Burst should be at least 1
	b := burst
	if b <= 0 {
		b = 1
	}
	return rate.NewLimiter(r, b)
}

// NewFactory creates a new LLM client factory
func NewFactory(cfg *config.Config, logger *loggy.Logger) *Factory {
	f := &Factory{
		config: cfg,
		logger: logger,
	}

	// Initialize Claude client and limiter if configured
	if cfg.Claude.APIKey != "" {
		f.claude = claude.NewClient(cfg.Claude)
		f.claudeLimiter = newLimiter(cfg.Claude.RequestsPerMinute, cfg.Claude.BurstLimit)
		loggy.Info("initialized Claude client", "model", cfg.Claude.Model, "rpm", cfg.Claude.RequestsPerMinute)
	}

	// Initialize Ollama client and limiter if configured
	if cfg.Ollama.Endpoint != "" {
		f.ollama = ollama.NewClient(cfg.Ollama)
		f.ollamaLimiter = newLimiter(cfg.Ollama.RequestsPerMinute, cfg.Ollama.BurstLimit)
		loggy.Info("initialized Ollama client", "endpoint", cfg.Ollama.Endpoint, "rpm", cfg.Ollama.RequestsPerMinute)
	}

	return f
}

// GetClient returns a client for the given provider type
func (f *Factory) GetClient(clientType ClientType) (Client, error) {
	switch clientType {
	case ClientTypeClaude:
		if f.claude == nil {
			return nil, fmt.Errorf("claude client not configured (missing API key)")
		}
		return &claudeClientAdapter{client: f.claude, limiter: f.claudeLimiter, logger: f.logger}, nil
	case ClientTypeOllama:
		if f.ollama == nil {
			return nil, fmt.Errorf("ollama client not configured (missing endpoint)")
		}
		return &ollamaClientAdapter{client: f.ollama, limiter: f.ollamaLimiter, logger: f.logger}, nil
	default:
		return nil, fmt.Errorf("unknown client type: %s", clientType)
	}
}

// GetDefaultClient returns the client for the configured default provider
func (f *Factory) GetDefaultClient() (Client, ClientType, error) {
	clientType := ClientType(f.config.DefaultProvider)

	client, err := f.GetClient(clientType)
	if err != nil {
		return nil, clientType, err
	}

	return client, clientType, nil
}
