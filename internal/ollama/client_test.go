package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/loggy"
)

func init() {
	loggy.NewNoopLogger()
}

func setupTestServer(handler http.HandlerFunc) (*httptest.Server, *Client) {
	server := httptest.NewServer(handler)

	cfg := config.OllamaConfig{
		Endpoint:   server.URL,
		Model:      "gemma3",
		Timeout:    5 * time.Second,
		MaxRetries: 0,
	}

	client := NewClient(cfg)
	return server, client
}

func TestGenerateCompletion(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.Equal(t, "gemma3", req.Model, "default model applied")

		resp := GenerateResponse{
			Model:    req.Model,
			Response: "Readable code with a couple of issues.",
			Done:     true,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	defer server.Close()

	resp, err := client.GenerateCompletion(context.Background(), GenerateRequest{
		Prompt: "review this file",
	})

	require.NoError(t, err)
	assert.Equal(t, "Readable code with a couple of issues.", resp.Response)
	assert.True(t, resp.Done)
}

func TestGenerateCompletionModelError(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		resp := GenerateResponse{Error: "model not found"}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	defer server.Close()

	_, err := client.GenerateCompletion(context.Background(), GenerateRequest{
		Prompt: "review this file",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestGenerateCompletionHTTPError(t *testing.T) {
	attempts := 0
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	})
	defer server.Close()

	_, err := client.GenerateCompletion(context.Background(), GenerateRequest{
		Prompt: "review this file",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, 1, attempts, "MaxRetries 0 means exactly one request")
}

func TestGetVersion(t *testing.T) {
	server, client := setupTestServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(VersionResponse{Version: "0.6.2"}))
	})
	defer server.Close()

	version, err := client.GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.6.2", version)
}
