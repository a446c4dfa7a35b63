package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

// markdownTemplate renders the report as a Markdown document, used for the
// exported report file.
const markdownTemplate = `# DevOps Verification Report

| Summary | |
|---|---|
| Project | {{ .Report.Root }} |
| Score | {{ printf "%.2f" .Report.Score }}% |
| Passed | {{ .Report.Passed }} |
| Failed | {{ .Report.Failed }} |
{{ range .Categories }}
## {{ .Category }}

{{ range .Findings }}- {{ mark .Passed }} **{{ .Name }}** ({{ .Severity }}): {{ .Details }}
{{ end }}{{ end }}
## Recommendations
{{ if .Recommendations }}
{{ range .Recommendations }}- **{{ .Name }}**: {{ .Details }}
{{ end }}{{ else }}
No failing critical or warning checks.
{{ end }}`

// MarkdownRenderer renders the report with text/template.
type MarkdownRenderer struct{}

var _ Renderer = MarkdownRenderer{}

type markdownData struct {
	Report          *models.Report
	Categories      []categoryGroup
	Recommendations []models.Finding
}

func (MarkdownRenderer) Render(w io.Writer, r *models.Report) error {
	tmpl, err := template.New("report.md").Funcs(template.FuncMap{
		"mark": func(passed bool) string {
			if passed {
				return "✅"
			}
			return "❌"
		},
	}).Parse(markdownTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	data := markdownData{
		Report:          r,
		Categories:      groupByCategory(r.Checks),
		Recommendations: recommendations(r.Checks),
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report template: %w", err)
	}
	return nil
}
