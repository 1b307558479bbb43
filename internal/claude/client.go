package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/loggy"
)

// Client represents an Anthropic Claude API client
// It handles all communication with the Claude API
type Client struct {
	apiKey           string
	baseURL          string
	defaultModel     string
	httpClient       *http.Client
	maxRetries       int
	defaultMaxTokens int
	apiVersion       string
	topP             *float64
	topK             *int
	temperature      *float64
}

// NewClient creates a new Claude client from config
func NewClient(cfg config.ClaudeConfig) *Client {
	// Ensure baseURL doesn't end with a slash
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	// Set default API version if not provided
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2023-06-01"
	}

	// Set default model if not provided
	defaultModel := cfg.Model
	if defaultModel == "" {
		defaultModel = "claude-3-7-sonnet-20250219"
	}

	// Set default max tokens if not provided
	defaultMaxTokens := cfg.MaxTokens
	if defaultMaxTokens <= 0 {
		defaultMaxTokens = 4096
	}

	// Create pointers for optional parameters only if they have valid values
	var tempPtr, topPPtr *float64
	var topKPtr *int

	if cfg.Temperature > 0 {
		tempPtr = &cfg.Temperature
	}
	if cfg.TopP > 0 {
		topPPtr = &cfg.TopP
	}
	if cfg.TopK > 0 {
		topKPtr = &cfg.TopK
	}

	return &Client{
		apiKey:           cfg.APIKey,
		baseURL:          baseURL,
		defaultModel:     defaultModel,
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		maxRetries:       cfg.MaxRetries,
		defaultMaxTokens: defaultMaxTokens,
		apiVersion:       apiVersion,
		topP:             topPPtr,
		topK:             topKPtr,
		temperature:      tempPtr,
	}
}

// GenerateMessage sends a message completion request to Claude
func (c *Client) GenerateMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	// Set default model if none specified
	if req.Model == "" {
		req.Model = c.defaultModel
	}

	// Set default max tokens if none specified
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.defaultMaxTokens
	}

	// Set default sampling parameters if none specified and client has defaults
	if req.Temperature == nil && c.temperature != nil {
		req.Temperature = c.temperature
	}
	if req.TopP == nil && c.topP != nil {
		req.TopP = c.topP
	}
	if req.TopK == nil && c.topK != nil {
		req.TopK = c.topK
	}

	// Force stream to false, critic works request-response only
	req.Stream = false

	var resp MessageResponse
	if err := c.makeRequest(ctx, "POST", "/v1/messages", req, &resp); err != nil {
		return nil, fmt.Errorf("generating message: %w", err)
	}

	return &resp, nil
}

// makeRequest is a helper function to make HTTP requests with retries
// The retry count comes from config and defaults to zero, a single attempt
func (c *Client) makeRequest(ctx context.Context, method, path string, body interface{}, response interface{}) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)

	loggy.Debug("Sending Claude request",
		"method", method,
		"url", url,
		"body_length", len(bodyBytes))

	var lastErr error
	operation := func() error {
		// Rebuild the request each attempt, the body reader is consumed per try
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(bodyBytes))
		if err != nil {
			lastErr = fmt.Errorf("creating request: %w", err)
			return backoff.Permanent(lastErr)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-api-key", c.apiKey)
		req.Header.Set("anthropic-version", c.apiVersion)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("sending request: %w", err)
			return lastErr
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = fmt.Errorf("reading response body: %w", err)
			return lastErr
		}

		loggy.Debug("Claude API response",
			"status", resp.Status,
			"content_length", len(respBody))

		if resp.StatusCode != http.StatusOK {
			loggy.Error("Claude API error response",
				"status", resp.Status,
				"body", string(respBody))

			lastErr = c.handleErrorResponse(resp, respBody)
			return lastErr
		}

		if err := json.Unmarshal(respBody, response); err != nil {
			lastErr = fmt.Errorf("decoding response: %w", err)
			return lastErr
		}

		return nil
	}

	err = backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)))
	if err != nil {
		return lastErr
	}

	return nil
}

// handleErrorResponse processes error responses from the API
// It attempts to parse the error JSON and return a structured error
func (c *Client) handleErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.ErrorDetails.Message == "" {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return &apiErr
}
