// Package extractor pulls the two-column summary table out of free-form
// model feedback. Extraction is best-effort text matching: it reports
// found or not found and never returns an error, so its fragility stays
// out of the orchestrator's control flow.
package extractor

import (
	"regexp"
	"strings"

	"github.com/tildaslashalef/critic/internal/loggy"
)

// SummaryTableMarker is the heading the prompt instructs the model to
// place immediately before the summary table
const SummaryTableMarker = "## Summary Table"

// tableBlockPattern matches the first contiguous run of lines that each
// begin with the table-row delimiter. The first line not starting with
// '|' terminates the block; a trailing prose line that happens to start
// with '|' is over-captured, which is the documented contract rather
// than something to silently fix.
var tableBlockPattern = regexp.MustCompile(`(?m)^(\|[^\n]*(?:\n|$))+`)

// TableExtractor extracts summary tables from LLM feedback text
type TableExtractor struct {
	logger *loggy.Logger
}

// NewTableExtractor creates a new TableExtractor
func NewTableExtractor(logger *loggy.Logger) *TableExtractor {
	return &TableExtractor{logger: logger}
}

// Extract locates the summary table in feedback text. It returns the
// table block (header row, separator row, and all contiguous data rows,
// trailing whitespace trimmed) and true when found; otherwise "" and
// false. A missing marker or a marker with no table lines after it is a
// normal outcome, not an error.
func (e *TableExtractor) Extract(content string) (string, bool) {
	idx := strings.Index(content, SummaryTableMarker)
	if idx < 0 {
		e.logger.Debug("summary table marker not found")
		return "", false
	}

	rest := content[idx+len(SummaryTableMarker):]

	block := tableBlockPattern.FindString(rest)
	if block == "" {
		e.logger.Debug("no table rows after summary table marker")
		return "", false
	}

	return strings.TrimRight(block, "\n \t"), true
}
