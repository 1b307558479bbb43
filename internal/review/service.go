// Package review drives the batch review pipeline: discover targets,
// review them one at a time in discovery order, and accumulate results
// for report assembly. A file's failure is recorded and the run moves
// on; only setup-stage errors abort a run.
package review

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tildaslashalef/critic/internal/config"
	"github.com/tildaslashalef/critic/internal/extractor"
	"github.com/tildaslashalef/critic/internal/llm"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/scanner"
)

// Service provides code review functionality
type Service struct {
	scanner   *scanner.Service
	llmClient llm.Client
	extractor *extractor.TableExtractor
	config    *config.Config
	provider  string
	logger    *loggy.Logger
}

// NewService creates a new review service
func NewService(
	scannerService *scanner.Service,
	llmClient llm.Client,
	cfg *config.Config,
	provider string,
	logger *loggy.Logger,
) *Service {
	return &Service{
		scanner:   scannerService,
		llmClient: llmClient,
		extractor: extractor.NewTableExtractor(logger),
		config:    cfg,
		provider:  provider,
		logger:    logger,
	}
}

// Run executes the full pipeline. Discovery completes before any review
// begins; each target is fully handled before the next starts. The
// returned Run holds exactly one Result per discovered target, in
// discovery order.
func (s *Service) Run(ctx context.Context) (*Run, error) {
	targets, err := s.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	run := NewRun(s.provider, s.config.ModelFor(s.provider))
	s.logger.Info("review run started",
		"run_id", run.ID,
		"run_name", run.Name,
		"provider", run.Provider,
		"model", run.Model,
		"files", len(targets))

	for _, target := range targets {
		result := Result{Target: target}

		feedback, err := s.ReviewFile(ctx, target)
		if err != nil {
			// Per-file recoverable: record and continue with the next file
			s.logger.Warn("review failed", "path", target.Path, "error", err)
			result.ErrorMsg = err.Error()
			run.Results = append(run.Results, result)
			continue
		}

		result.Feedback = feedback
		if table, found := s.extractor.Extract(feedback); found {
			result.Summary = table
			result.HasSummary = true
		}

		s.logger.Info("review complete", "path", target.Path, "summary_extracted", result.HasSummary)
		run.Results = append(run.Results, result)
	}

	run.Duration = time.Since(run.StartedAt)
	return run, nil
}

// ReviewFile performs a code review on a single file: one read, one
// blocking request, raw response returned verbatim. All failures are
// returned to the caller and never terminate the run.
func (s *Service) ReviewFile(ctx context.Context, target scanner.Target) (string, error) {
	content, err := os.ReadFile(target.Path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	prompt, err := BuildReviewPrompt(target.Path, target.Language, string(content))
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	req := llm.GenerateRequest{
		Model:  s.config.ModelFor(s.provider),
		Prompt: prompt,
		System: SystemInstruction(),
	}
	switch s.provider {
	case "claude":
		req.MaxTokens = s.config.Claude.MaxTokens
		req.Temperature = s.config.Claude.Temperature
	case "ollama":
		req.MaxTokens = s.config.Ollama.MaxTokens
		req.Temperature = s.config.Ollama.Temperature
	}

	resp, err := s.llmClient.GenerateText(ctx, req)
	if err != nil {
		return "", fmt.Errorf("requesting review: %w", err)
	}

	return resp.Content, nil
}
