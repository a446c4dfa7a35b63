package checks

import (
	"fmt"
	"strings"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/matcher"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

var (
	iacComputeKeywords = []string{"ecs", "eks", "container", "app_service", "cloud run", "kubernetes"}
	iacNetworkKeywords = []string{"vpc", "subnet", "security_group", "network", "route"}
	iacDBKeywords      = []string{"postgres", "rds", "sql", "db_instance", "database"}
)

// IaCChecker audits infrastructure-as-code signals across Terraform, Bicep
// and CloudFormation-style templates.
type IaCChecker struct{}

var _ Checker = IaCChecker{}

func (IaCChecker) Category() models.Category {
	return models.CategoryIaC
}

func (c IaCChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	terraform := finder.FilesMatching("*.tf")
	bicep := finder.FilesMatching("*.bicep")
	cfn := finder.FilesNamed("template.yaml", "template.yml")

	var parts []string
	if len(terraform) > 0 {
		parts = append(parts, fmt.Sprintf("Terraform: %d file(s)", len(terraform)))
	}
	if len(bicep) > 0 {
		parts = append(parts, fmt.Sprintf("Bicep: %d file(s)", len(bicep)))
	}
	if len(cfn) > 0 {
		parts = append(parts, fmt.Sprintf("CloudFormation-like templates: %d file(s)", len(cfn)))
	}

	hasIaC := len(parts) > 0
	findings = append(findings, newFinding(
		models.CategoryIaC, "Infrastructure as Code present", models.SeverityWarning,
		hasIaC,
		strings.Join(parts, "; "), "No IaC files detected.",
	))

	all := append(append(terraform, bicep...), cfn...)
	combined := finder.CombinedText(all)

	findings = append(findings, newFinding(
		models.CategoryIaC, "IaC defines compute resources", models.SeverityWarning,
		matcher.ContainsAny(combined, iacComputeKeywords),
		"Compute keywords detected.", "No obvious compute resources detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryIaC, "IaC defines networking resources", models.SeverityWarning,
		matcher.ContainsAny(combined, iacNetworkKeywords),
		"Networking keywords detected.", "No obvious networking resources detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryIaC, "IaC defines database resources", models.SeverityWarning,
		matcher.ContainsAny(combined, iacDBKeywords),
		"Database keywords detected.", "No obvious database resources detected.",
	))

	return findings
}
