package utils

import (
	"strings"
	"time"

	"github.com/goombaio/namegenerator"
)

// GenerateRunName creates a random, memorable run name using namegenerator
func GenerateRunName() string {
	seed := time.Now().UTC().UnixNano()
	nameGenerator := namegenerator.NewNameGenerator(seed)

	// Generate a name like "wispy-dust"
	name := nameGenerator.Generate()

	// Some names might have underscores; convert to hyphens for consistency
	name = strings.ReplaceAll(name, "_", "-")

	return name
}

// SanitizeDirectoryName cleans up a directory name for display and for
// use in generated file names
func SanitizeDirectoryName(dirName string) string {
	// Replace spaces with hyphens and convert to lowercase
	name := strings.ToLower(strings.ReplaceAll(dirName, " ", "-"))

	// Replace other separator characters with hyphens
	replacer := strings.NewReplacer(
		"_", "-",
		".", "-",
		",", "-",
		";", "-",
		":", "-",
		"/", "-",
		"\\", "-",
	)
	name = replacer.Replace(name)

	// Replace multiple consecutive hyphens with a single hyphen
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	// Remove leading and trailing hyphens
	name = strings.Trim(name, "-")

	return name
}
