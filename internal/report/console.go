package report

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/tildaslashalef/critic/internal/review"
	"github.com/tildaslashalef/critic/internal/utils"
)

// PrintStats renders the run counters as a console table
func PrintStats(run *review.Run) {
	stats := run.Stats()

	t := utils.NewTable("Review Run " + run.Name)
	t.AppendHeader(table.Row{"Files", "Reviewed", "Failed", "Summaries", "Duration"})
	t.AppendRow(table.Row{
		stats.Files,
		stats.Reviewed,
		stats.Failed,
		stats.Summaries,
		stats.Duration.Round(time.Millisecond).String(),
	})
	t.Render()
}
