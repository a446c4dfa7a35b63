package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

// HumanRenderer writes the terminal report: a summary table, findings
// grouped by category in catalogue order, and a trailing Recommendations
// section of failed non-info checks.
type HumanRenderer struct {
	NoColor bool
}

var _ Renderer = HumanRenderer{}

func (h HumanRenderer) Render(w io.Writer, r *models.Report) error {
	if h.NoColor {
		color.NoColor = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("DevOps Verification Report")
	t.AppendRows([]table.Row{
		{"Project", r.Root},
		{"Score", h.scoreCell(r.Score)},
		{"Passed", r.Passed},
		{"Failed", r.Failed},
	})
	t.Render()

	for _, group := range groupByCategory(r.Checks) {
		fmt.Fprintf(w, "\n[%s]\n", group.Category)
		for _, f := range group.Findings {
			fmt.Fprintf(w, "  %s %s (%s)\n", h.mark(f.Passed), f.Name, h.severityCell(f.Severity))
			fmt.Fprintf(w, "     %s\n", f.Details)
		}
	}

	fmt.Fprintf(w, "\nRecommendations:\n")
	for _, f := range recommendations(r.Checks) {
		fmt.Fprintf(w, "  - %s: %s\n", f.Name, f.Details)
	}
	return nil
}

func (h HumanRenderer) mark(passed bool) string {
	if passed {
		return color.GreenString("✅")
	}
	return color.RedString("❌")
}

func (h HumanRenderer) scoreCell(score float64) string {
	text := fmt.Sprintf("%.2f%%", score)
	switch {
	case score >= 80:
		return color.GreenString(text)
	case score >= 50:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}

func (h HumanRenderer) severityCell(sev models.Severity) string {
	switch sev {
	case models.SeverityCritical:
		return color.RedString(string(sev))
	case models.SeverityWarning:
		return color.YellowString(string(sev))
	default:
		return color.CyanString(string(sev))
	}
}
