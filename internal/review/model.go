package review

import (
	"time"

	"github.com/tildaslashalef/critic/internal/scanner"
	"github.com/tildaslashalef/critic/internal/ulid"
	"github.com/tildaslashalef/critic/internal/utils"
)

// Result is the outcome of reviewing one target: either feedback text
// or an error message, never both. Results are append-only and keep
// discovery order.
type Result struct {
	Target   scanner.Target
	Feedback string // Raw model response, set on success
	ErrorMsg string // Per-file failure message, set on failure

	// Summary table extracted from the feedback, when the pattern
	// match succeeded. Absent is a normal outcome, not an error.
	Summary    string
	HasSummary bool
}

// Failed reports whether the review of this target failed
func (r *Result) Failed() bool {
	return r.ErrorMsg != ""
}

// Run captures one complete review run. Identity fields are assigned at
// construction so report assembly stays a pure function of the Run.
type Run struct {
	ID        string // Prefixed ULID, e.g. run-01H...
	Name      string // Memorable run name, e.g. wispy-dust
	Provider  string
	Model     string
	StartedAt time.Time
	Duration  time.Duration
	Results   []Result
}

// NewRun creates a run with a fresh ID and name
func NewRun(provider, model string) *Run {
	return &Run{
		ID:        ulid.RunID(),
		Name:      utils.GenerateRunName(),
		Provider:  provider,
		Model:     model,
		StartedAt: time.Now(),
	}
}

// Stats aggregates run counters for the console summary
type Stats struct {
	Files     int
	Reviewed  int
	Failed    int
	Summaries int
	Duration  time.Duration
}

// Stats computes counters over the run's results
func (r *Run) Stats() Stats {
	s := Stats{Files: len(r.Results), Duration: r.Duration}
	for i := range r.Results {
		if r.Results[i].Failed() {
			s.Failed++
			continue
		}
		s.Reviewed++
		if r.Results[i].HasSummary {
			s.Summaries++
		}
	}
	return s
}
