package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemInstruction(t *testing.T) {
	instruction := SystemInstruction()

	// The instruction must pin the exact table contract the extractor
	// depends on
	assert.Contains(t, instruction, "## Summary Table")
	assert.Contains(t, instruction, "Main Problem")
	assert.Contains(t, instruction, "Suggested Location/Line")
	assert.Contains(t, instruction, "no serious problems were found")
	assert.Contains(t, instruction, "strengths")
}

func TestBuildReviewPrompt(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		language string
		content  string
		contains []string
	}{
		{
			name:     "with language",
			path:     "src/main.go",
			language: "Go",
			content:  "package main\n",
			contains: []string{"Go source file", "File: src/main.go", "package main"},
		},
		{
			name:     "without language",
			path:     "src/odd.go",
			language: "",
			content:  "package odd\n",
			contains: []string{"File: src/odd.go", "package odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildReviewPrompt(tt.path, tt.language, tt.content)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, prompt, want)
			}
		})
	}
}

func TestBuildReviewPromptEmbedsFullContent(t *testing.T) {
	content := strings.Repeat("func f() {}\n", 100)

	prompt, err := BuildReviewPrompt("x.go", "Go", content)
	require.NoError(t, err)

	assert.Contains(t, prompt, content, "file content must be interpolated verbatim")
}
