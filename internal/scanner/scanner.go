// Package scanner discovers the source files a review run covers. It
// walks a root directory depth-first, skips a fixed set of directory
// names at any nesting depth, and tags each matching file with its
// detected language.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/loggy"
)

// Service provides file discovery functionality
type Service struct {
	cfg      config.ScanConfig
	detector *LanguageDetector
	logger   *loggy.Logger
}

// NewService creates a new scanner service
func NewService(cfg config.ScanConfig, logger *loggy.Logger) *Service {
	return &Service{
		cfg:      cfg,
		detector: NewLanguageDetector(logger),
		logger:   logger,
	}
}

// Scan walks the configured root and returns discovered targets in
// traversal order. Directory entries are visited in os.ReadDir name
// order, so the result is deterministic for a given tree.
//
// A missing or unreadable root is an error, not an empty result. An
// empty tree yields an empty slice and no error.
func (s *Service) Scan() ([]Target, error) {
	root := s.cfg.RootDir

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading root directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", root)
	}

	var targets []Target
	if err := s.walk(root, &targets); err != nil {
		return nil, err
	}

	s.logger.Info("scan complete", "root", root, "files", len(targets))
	return targets, nil
}

// walk recurses into dir, appending matching files in entry order
func (s *Service) walk(dir string, targets *[]Target) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Root readability is checked by Scan; a subdirectory that
		// disappears or denies access mid-walk is skipped, not fatal
		s.logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if s.isExcluded(entry.Name()) {
				s.logger.Debug("skipping excluded directory", "dir", path)
				continue
			}
			if err := s.walk(path, targets); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), s.cfg.Extension) {
			continue
		}

		language, err := s.detector.DetectLanguage(path)
		if err != nil {
			// Detection is a label, not a gate; the file is still reviewed
			s.logger.Debug("language detection failed", "path", path, "error", err)
			language = ""
		}

		*targets = append(*targets, Target{Path: path, Language: language})
	}

	return nil
}

// isExcluded reports whether a directory name is in the exclusion set
func (s *Service) isExcluded(name string) bool {
	for _, excluded := range s.cfg.ExcludeDirs {
		if name == excluded {
			return true
		}
	}
	return false
}
