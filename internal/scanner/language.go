package scanner

import (
	"fmt"
	"io"
	"os"

	"github.com/go-enry/go-enry/v2"

	"github.com/tildaslashalef/critic/internal/loggy"
)

// LanguageDetector detects the programming language of a file
type LanguageDetector struct {
	logger *loggy.Logger
}

// NewLanguageDetector creates a new language detector
func NewLanguageDetector(logger *loggy.Logger) *LanguageDetector {
	return &LanguageDetector{logger: logger}
}

// DetectLanguage determines the language of a file from its name and a
// content sample using go-enry
func (d *LanguageDetector) DetectLanguage(filePath string) (string, error) {
	// Read a small sample of the file
	data, err := readFileSample(filePath, 8*1024) // Read up to 8KB
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	language := enry.GetLanguage(filePath, data)
	if language == "" {
		return "", fmt.Errorf("unable to detect language for %s", filePath)
	}

	return language, nil
}

// readFileSample reads up to maxBytes from the start of a file
func readFileSample(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return nil, err
	}

	return data, nil
}
