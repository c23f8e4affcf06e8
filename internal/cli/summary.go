package cli

import (
	"yearsort/pkg/types"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderSummary renders the final run statistics as a small table. It is
// printed after every run, including one stopped by an interactive quit.
func RenderSummary(stats *types.RunStats) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Outcome", "Count"})
	t.AppendRows([]table.Row{
		{"Files moved", stats.FilesMoved},
		{"Directories moved", stats.DirsMoved},
		{"Renamed", stats.Renamed},
		{"Merged", stats.Merged},
		{"Skipped", stats.Skipped},
		{"Errors", stats.Errors},
	})
	return t.Render()
}
