package checks

import (
	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/matcher"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

// requiredReadmeTopics is the all-or-nothing topic set: the README either
// covers every one of them or the check fails. No partial credit.
var requiredReadmeTopics = []string{
	"ci/cd",
	"kubernetes",
	"monitoring",
	"deployment",
	"grafana",
	"prometheus",
}

var architectureDocGlobs = []string{
	"docs/architecture.md",
	"docs/adr/*.md",
	"ARCHITECTURE.md",
	"architecture.md",
}

// DocsChecker audits documentation completeness.
type DocsChecker struct{}

var _ Checker = DocsChecker{}

func (DocsChecker) Category() models.Category {
	return models.CategoryDocs
}

func (c DocsChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	readmes := finder.FilesNamed("readme.md", "readme")
	findings = append(findings, newFinding(
		models.CategoryDocs, "README present", models.SeverityCritical,
		len(readmes) > 0,
		"README found.", "Missing README.",
	))

	// With no README there is no evidence, so the topic check fails rather
	// than passing vacuously.
	readmeText := ""
	if len(readmes) > 0 {
		readmeText = finder.ReadText(readmes[0])
	}
	topicsOK := len(readmes) > 0 && matcher.ContainsAll(readmeText, requiredReadmeTopics)
	findings = append(findings, newFinding(
		models.CategoryDocs, "README covers CI/CD, K8s, Monitoring", models.SeverityWarning,
		topicsOK,
		"README references required topics.", "README missing required topics.",
	))

	findings = append(findings, newFinding(
		models.CategoryDocs, "Screenshots/diagrams referenced", models.SeverityInfo,
		matcher.ReferencesImage(readmeText),
		"README references images.", "No images referenced in README.",
	))

	findings = append(findings, newFinding(
		models.CategoryDocs, "Architecture documentation present", models.SeverityInfo,
		finder.HasAnyFile(architectureDocGlobs...),
		"Architecture docs found.", "No architecture docs detected.",
	))

	return findings
}
