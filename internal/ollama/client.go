// Package ollama implements a client for a local Ollama server, used when
// reviews should run against a local model instead of a hosted API.
package ollama

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

// Client is the Ollama API client
type Client struct {
	// Config for the client
	config config.OllamaConfig

	// HTTP client for API requests
	httpClient *http.Client
}

// NewClient creates a new Ollama client with the provided configuration
func NewClient(cfg config.OllamaConfig) *Client {
	// Create HTTP client with timeout from config
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     cfg.IdleConnTimeout,
		},
	}

	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}
}

// GetVersion returns the Ollama server version
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	var resp VersionResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/api/version", nil, &resp); err != nil {
		return "", fmt.Errorf("getting version: %w", err)
	}
	return resp.Version, nil
}

// GenerateCompletion sends a text generation request
func (c *Client) GenerateCompletion(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	// Use default model if none specified
	if req.Model == "" {
		req.Model = c.config.Model
	}

	// Explicitly set streaming to false, critic works request-response only
	req.Stream = false

	if req.Options == nil && (c.config.Temperature > 0 || c.config.MaxTokens > 0) {
		req.Options = &RequestOptions{
			Temperature: c.config.Temperature,
			NumPredict:  c.config.MaxTokens,
		}
	}

	var resp GenerateResponse
	if err := c.makeRequest(ctx, http.MethodPost, "/api/generate", req, &resp); err != nil {
		return nil, fmt.Errorf("generating completion: %w", err)
	}

	// Check for errors in the response
	if resp.Error != "" {
		return &resp, fmt.Errorf("model error: %s", resp.Error)
	}

	return &resp, nil
}

// makeRequest handles an HTTP round trip with config-driven retries
// MaxRetries defaults to zero, so the default behavior is a single attempt
func (c *Client) makeRequest(ctx context.Context, method, path string, reqBody interface{}, respBody interface{}) error {
	url := strings.TrimSuffix(c.config.Endpoint, "/") + path

	var bodyBytes []byte
	var err error
	if reqBody != nil {
		bodyBytes, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
	}

	loggy.Debug("Sending Ollama request", "method", method, "url", url)

	var lastErr error
	operation := func() error {
		var reader io.Reader
		if bodyBytes != nil {
			reader = bytes.NewReader(bodyBytes)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			lastErr = fmt.Errorf("creating request: %w", err)
			return backoff.Permanent(lastErr)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("sending request: %w", err)
			return lastErr
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = fmt.Errorf("reading response body: %w", err)
			return lastErr
		}

		if resp.StatusCode != http.StatusOK {
			loggy.Error("Ollama API error response",
				"status", resp.Status,
				"body", string(data))

			lastErr = fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(data))
			return lastErr
		}

		if err := json.Unmarshal(data, respBody); err != nil {
			lastErr = fmt.Errorf("decoding response: %w", err)
			return lastErr
		}

		return nil
	}

	err = backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.config.MaxRetries)))
	if err != nil {
		return lastErr
	}

	return nil
}
