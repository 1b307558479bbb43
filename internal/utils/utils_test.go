package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunName(t *testing.T) {
	name := GenerateRunName()
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, "_")
	assert.Equal(t, strings.ToLower(name), name)
}

func TestSanitizeDirectoryName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "project", "project"},
		{"spaces to hyphens", "My Project", "my-project"},
		{"mixed separators", "my_project.v2", "my-project-v2"},
		{"path separators", "src/internal", "src-internal"},
		{"collapses runs of separators", "a__b..c", "a-b-c"},
		{"trims leading and trailing", "_name_", "name"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeDirectoryName(tt.input))
		})
	}
}
