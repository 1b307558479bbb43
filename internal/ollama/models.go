package ollama

import "time"

// RequestOptions contains generation parameters for Ollama requests
type RequestOptions struct {
	Temperature float64 `json:"temperature,omitempty"` // Controls randomness
	NumPredict  int     `json:"num_predict,omitempty"` // Max tokens to generate
	TopP        float64 `json:"top_p,omitempty"`       // Nucleus sampling parameter
	TopK        int     `json:"top_k,omitempty"`       // Top-k sampling parameter
}

// GenerateRequest represents a request to the /api/generate endpoint
type GenerateRequest struct {
	Model   string          `json:"model"`            // Model name (required)
	Prompt  string          `json:"prompt"`           // Text prompt
	System  string          `json:"system,omitempty"` // System message
	Stream  bool            `json:"stream"`           // Whether to stream the response
	Options *RequestOptions `json:"options,omitempty"`
}

// GenerateResponse represents a response from the /api/generate endpoint
type GenerateResponse struct {
	Model           string    `json:"model"`
	CreatedAt       time.Time `json:"created_at"`
	Response        string    `json:"response"`
	Done            bool      `json:"done"`
	TotalDuration   int64     `json:"total_duration,omitempty"`
	PromptEvalCount int       `json:"prompt_eval_count,omitempty"`
	EvalCount       int       `json:"eval_count,omitempty"`
	Error           string    `json:"error,omitempty"`
}

// VersionResponse represents a response from the /api/version endpoint
type VersionResponse struct {
	Version string `json:"version"`
}
