package render

import (
	"io"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

// Renderer writes one representation of a finished report. Renderers are
// read-only consumers: they never modify the report.
type Renderer interface {
	Render(w io.Writer, r *models.Report) error
}

// categoryGroup is a report's findings for one category, in catalogue order.
type categoryGroup struct {
	Category models.Category
	Findings []models.Finding
}

// groupByCategory splits the findings by category, preserving both the
// category order and the in-category check order.
func groupByCategory(findings []models.Finding) []categoryGroup {
	var groups []categoryGroup
	index := make(map[models.Category]int)
	for _, f := range findings {
		i, ok := index[f.Category]
		if !ok {
			i = len(groups)
			index[f.Category] = i
			groups = append(groups, categoryGroup{Category: f.Category})
		}
		groups[i].Findings = append(groups[i].Findings, f)
	}
	return groups
}

// recommendations returns the failed non-info findings, report order.
func recommendations(findings []models.Finding) []models.Finding {
	var out []models.Finding
	for _, f := range findings {
		if !f.Passed && f.Severity != models.SeverityInfo {
			out = append(out, f)
		}
	}
	return out
}
