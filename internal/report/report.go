// Package report assembles the aggregated markdown report from a review
// run and writes it to the configured output path. Assembly is a pure
// function of the run, so identical runs produce identical documents.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/review"
)

// noSummariesPlaceholder is emitted when no summary tables were
// extracted, including the zero-files case
const noSummariesPlaceholder = "_No summary tables were extracted in this run._"

// Service builds and writes review reports
type Service struct {
	cfg    config.ReportConfig
	logger *loggy.Logger
}

// NewService creates a new report service
func NewService(cfg config.ReportConfig, logger *loggy.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// Build assembles the full report document: a header, one section per
// result in run order, and a consolidated summary section.
func (s *Service) Build(run *review.Run) string {
	var b strings.Builder

	stats := run.Stats()

	// Header
	fmt.Fprintf(&b, "# %s\n\n", s.cfg.Title)
	fmt.Fprintf(&b, "- Run: `%s` (%s)\n", run.ID, run.Name)
	fmt.Fprintf(&b, "- Generated: %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Provider: %s (%s)\n", run.Provider, run.Model)
	fmt.Fprintf(&b, "- Files: %d reviewed, %d failed\n\n", stats.Reviewed, stats.Failed)

	// Per-file sections, one per discovered target, discovery order
	for i := range run.Results {
		result := &run.Results[i]

		if result.Target.Language != "" {
			fmt.Fprintf(&b, "## %s (%s)\n\n", result.Target.Path, result.Target.Language)
		} else {
			fmt.Fprintf(&b, "## %s\n\n", result.Target.Path)
		}

		if result.Failed() {
			fmt.Fprintf(&b, "**Review failed:** %s\n\n", result.ErrorMsg)
			continue
		}

		b.WriteString(strings.TrimRight(result.Feedback, "\n"))
		b.WriteString("\n\n")
	}

	// Consolidated summary section
	b.WriteString("# Review Summary\n\n")

	wroteSummary := false
	for i := range run.Results {
		result := &run.Results[i]
		if !result.HasSummary {
			continue
		}

		fmt.Fprintf(&b, "### %s\n\n", result.Target.Path)
		b.WriteString(result.Summary)
		b.WriteString("\n\n")
		wroteSummary = true
	}

	if !wroteSummary {
		b.WriteString(noSummariesPlaceholder)
		b.WriteString("\n")
	}

	return b.String()
}

// Write builds the report and writes it to the configured output path,
// creating the parent directory if needed and overwriting any previous
// report. Both failures are fatal to the run.
func (s *Service) Write(run *review.Run) (string, error) {
	content := s.Build(run)

	dir := filepath.Dir(s.cfg.OutputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory %s: %w", dir, err)
	}

	if err := os.WriteFile(s.cfg.OutputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", s.cfg.OutputPath, err)
	}

	s.logger.Info("report written", "path", s.cfg.OutputPath, "bytes", len(content))
	return content, nil
}
