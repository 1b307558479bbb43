package claude

import (
	"fmt"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// MessageRequest represents a message completion request to the Claude API
type MessageRequest struct {
	Model       string    `json:"model"`                 // Claude model to use
	Messages    []Message `json:"messages"`              // Chat history messages
	System      string    `json:"system,omitempty"`      // System instructions
	MaxTokens   int       `json:"max_tokens,omitempty"`  // Maximum tokens to generate
	Temperature *float64  `json:"temperature,omitempty"` // Controls randomness
	TopP        *float64  `json:"top_p,omitempty"`       // Nucleus sampling parameter
	TopK        *int      `json:"top_k,omitempty"`       // Top-k sampling parameter
	Stream      bool      `json:"stream,omitempty"`      // Always false, critic never streams
}

// ContentBlock represents a block of content in a response
// Claude responses can contain multiple content blocks of different types
type ContentBlock struct {
	Type string `json:"type"` // Content type (e.g., "text", "thinking")
	Text string `json:"text"` // The actual content text
}

// MessageResponse represents the full message response from the Claude API
type MessageResponse struct {
	ID         string         `json:"id"`                    // Message ID
	Type       string         `json:"type"`                  // Message type
	Role       string         `json:"role"`                  // Message role (e.g., "assistant")
	Content    []ContentBlock `json:"content"`               // Message content blocks
	Model      string         `json:"model"`                 // Model used
	StopReason string         `json:"stop_reason,omitempty"` // Reason why generation stopped
	Usage      *UsageInfo     `json:"usage,omitempty"`       // Token usage information
}

// Text concatenates the text content blocks of the response
func (r *MessageResponse) Text() string {
	var out string
	for _, block := range r.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}

// UsageInfo contains token usage information for a request
type UsageInfo struct {
	InputTokens  int `json:"input_tokens"`  // Number of input tokens
	OutputTokens int `json:"output_tokens"` // Number of output tokens
}

// APIError represents an error response from the Claude API
type APIError struct {
	Type         string `json:"type"`
	ErrorDetails struct {
		Type    string `json:"type"`    // Error type
		Message string `json:"message"` // Error message
	} `json:"error"`
}

// Error implements the error interface for APIError
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorDetails.Type, e.ErrorDetails.Message)
}
