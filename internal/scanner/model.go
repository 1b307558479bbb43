package scanner

// Target is a source file discovered during the walk. Identity is the
// path string; a target is produced once by discovery and consumed once
// by the reviewer.
type Target struct {
	Path     string // Full path relative to the working directory
	Language string // Detected language name, empty when detection fails
}
