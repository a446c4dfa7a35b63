package checks

import (
	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

var (
	testDirGlobs = []string{"tests/**", "test/**"}

	// Test-file naming conventions across the common ecosystems.
	testFileGlobs = []string{
		"*_test.py",
		"test_*.py",
		"*.spec.js",
		"*.test.js",
		"*.spec.ts",
		"*.test.ts",
		"*_test.go",
	}

	lintConfigNames = []string{
		".flake8",
		"pyproject.toml",
		"ruff.toml",
		".eslintrc",
		".eslintrc.js",
		".eslintrc.json",
		"eslint.config.js",
		"pylintrc",
		".golangci.yml",
		".golangci.yaml",
	}
)

// QualityChecker audits testing and lint/format signals.
type QualityChecker struct{}

var _ Checker = QualityChecker{}

func (QualityChecker) Category() models.Category {
	return models.CategoryQuality
}

func (c QualityChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	hasTests := finder.HasAnyFile(testDirGlobs...) || finder.HasAnyFile(testFileGlobs...)
	findings = append(findings, newFinding(
		models.CategoryQuality, "Automated tests present", models.SeverityCritical,
		hasTests,
		"Found test files/directories.", "No test files/directories detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryQuality, "Lint/format config present", models.SeverityWarning,
		finder.HasFileNamed(lintConfigNames...),
		"Lint/format config found.", "No lint/format config detected.",
	))

	return findings
}
