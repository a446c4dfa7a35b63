package checks

import (
	"path"
	"strings"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/fstree"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/matcher"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

const workflowsDir = ".github/workflows"

// Pipeline signal keyword sets. These are matched case-insensitively against
// the combined text of every workflow file.
var (
	triggerKeywords = []string{"pull_request", "push", "workflow_dispatch"}

	checkoutKeywords = []string{"actions/checkout"}

	testKeywords = []string{
		"pytest",
		"npm test",
		"go test",
		"dotnet test",
		"mvn test",
		"gradle test",
		"unittest",
	}

	buildKeywords = []string{"docker build", "buildx", "build and push", "publish", "package"}

	securityKeywords = []string{"codeql", "trivy", "snyk", "bandit", "gitleaks", "dependency-review-action"}

	registryKeywords = []string{
		"docker/login-action",
		"docker/build-push-action",
		"docker push",
		"buildx",
		"ecr",
		"gcr.io",
		"ghcr.io",
		"acr",
	}

	deployKeywords = []string{
		"kubectl apply",
		"kubectl rollout",
		"helm upgrade",
		"helm install",
		"terraform apply",
		"pulumi up",
		"ecs deploy",
		"azure/webapps-deploy",
		"gcloud run deploy",
	}
)

// CICDChecker audits the shape of the GitHub Actions pipeline: triggers,
// checkout, tests, build, security scanning, registry push and deploy.
type CICDChecker struct{}

var _ Checker = CICDChecker{}

func (CICDChecker) Category() models.Category {
	return models.CategoryCICD
}

func (c CICDChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	workflows := workflowFiles(finder)
	findings = append(findings, newFinding(
		models.CategoryCICD, "GitHub Actions workflows exist", models.SeverityCritical,
		len(workflows) > 0,
		"Workflow files found.", "No workflow files in .github/workflows.",
	))

	combined := finder.CombinedText(workflows)

	keywordChecks := []struct {
		name     string
		severity models.Severity
		keywords []string
		pass     string
		fail     string
	}{
		{"Pipeline has triggers", models.SeverityCritical, triggerKeywords,
			"Found common triggers.", "No common CI triggers found."},
		{"Pipeline checks out code", models.SeverityWarning, checkoutKeywords,
			"actions/checkout found.", "No checkout step found."},
		{"Pipeline runs tests", models.SeverityCritical, testKeywords,
			"Test command detected.", "No obvious test step detected."},
		{"Pipeline has build/package step", models.SeverityWarning, buildKeywords,
			"Build/package keywords found.", "No clear build/package step detected."},
		{"Pipeline has security scanning", models.SeverityInfo, securityKeywords,
			"Security scan keyword found.", "No security scan detected."},
		{"Pipeline pushes image to registry", models.SeverityCritical, registryKeywords,
			"Registry push/login step detected.", "No registry push/login detected."},
		{"Pipeline deploys application", models.SeverityCritical, deployKeywords,
			"Deploy step detected.", "No deploy step detected."},
	}

	for _, kc := range keywordChecks {
		findings = append(findings, newFinding(
			models.CategoryCICD, kc.name, kc.severity,
			matcher.ContainsAny(combined, kc.keywords),
			kc.pass, kc.fail,
		))
	}

	return findings
}

// workflowFiles returns the YAML files that sit directly inside
// .github/workflows, taken from the snapshot rather than a fresh readdir.
func workflowFiles(finder *evidence.Finder) []fstree.File {
	var out []fstree.File
	for _, f := range finder.Index().Files() {
		if path.Dir(f.RelPath) != workflowsDir {
			continue
		}
		ext := strings.ToLower(path.Ext(f.Name))
		if ext == ".yml" || ext == ".yaml" {
			out = append(out, f)
		}
	}
	return out
}
