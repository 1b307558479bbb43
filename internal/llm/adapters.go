package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tildaslashalef/critic/internal/claude"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/ollama"
)

// claudeClientAdapter adapts the Claude client to the Client interface
type claudeClientAdapter struct {
	client  *claude.Client
	limiter *rate.Limiter
	logger  *loggy.Logger
}

// GenerateText implements the Client interface for Claude
func (a *claudeClientAdapter) GenerateText(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	claudeReq := claude.MessageRequest{
		Model: req.Model,
		Messages: []claude.Message{
			{Role: "user", Content: req.Prompt},
		},
		System:    req.System,
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature > 0 {
		claudeReq.Temperature = &req.Temperature
	}

	resp, err := a.client.GenerateMessage(ctx, claudeReq)
	if err != nil {
		return nil, err
	}

	content := resp.Text()
	if content == "" {
		return nil, fmt.Errorf("empty response from model %s", resp.Model)
	}

	return &GenerateResponse{
		Content: content,
		Model:   resp.Model,
	}, nil
}

// ollamaClientAdapter adapts the Ollama client to the Client interface
type ollamaClientAdapter struct {
	client  *ollama.Client
	limiter *rate.Limiter
	logger  *loggy.Logger
}

// GenerateText implements the Client interface for Ollama
func (a *ollamaClientAdapter) GenerateText(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	ollamaReq := ollama.GenerateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
		System: req.System,
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		ollamaReq.Options = &ollama.RequestOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateCompletion(ctx, ollamaReq)
	if err != nil {
		return nil, err
	}

	if resp.Response == "" {
		return nil, fmt.Errorf("empty response from model %s", resp.Model)
	}

	return &GenerateResponse{
		Content: resp.Response,
		Model:   resp.Model,
	}, nil
}
