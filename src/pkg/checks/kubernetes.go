package checks

import (
	"fmt"
	"path"
	"strings"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/fstree"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/matcher"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"gopkg.in/yaml.v3"
)

// manifestDirs are the directory names a Kubernetes manifest is expected to
// live under; a YAML file also counts when "k8s" appears in its name.
var manifestDirs = map[string]bool{
	"k8s":        true,
	"kubernetes": true,
	"manifests":  true,
	"deploy":     true,
	"deployment": true,
	"helm":       true,
}

var llmSecretKeys = []string{
	"openai_api_key",
	"anthropic_api_key",
	"llm_api_key",
	"azure_openai_api_key",
	"gemini_api_key",
}

// requiredKinds are checked in alphabetical order; Deployment and Service
// are the critical ones.
var requiredKinds = []struct {
	kind     string
	display  string
	severity models.Severity
}{
	{"configmap", "Configmap", models.SeverityWarning},
	{"deployment", "Deployment", models.SeverityCritical},
	{"secret", "Secret", models.SeverityWarning},
	{"service", "Service", models.SeverityCritical},
}

// KubernetesChecker audits manifest presence, the core resource kinds,
// service exposure, LLM secret handling and Helm packaging.
type KubernetesChecker struct{}

var _ Checker = KubernetesChecker{}

func (KubernetesChecker) Category() models.Category {
	return models.CategoryKubernetes
}

func (c KubernetesChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	yamlFiles := manifestFiles(finder)
	findings = append(findings, newFinding(
		models.CategoryKubernetes, "Kubernetes manifests present", models.SeverityCritical,
		len(yamlFiles) > 0,
		"K8s YAML files found.", "No Kubernetes YAML files detected.",
	))

	kinds := make(map[string]bool)
	var secretsText, serviceText strings.Builder
	for _, f := range yamlFiles {
		content := finder.ReadText(f)
		for _, kind := range matcher.KindValues(content) {
			kinds[kind] = true
		}
		lower := strings.ToLower(content)
		if strings.Contains(lower, "secret") {
			secretsText.WriteString("\n")
			secretsText.WriteString(lower)
		}
		if strings.Contains(lower, "service") {
			serviceText.WriteString("\n")
			serviceText.WriteString(lower)
		}
	}

	for _, rk := range requiredKinds {
		findings = append(findings, newFinding(
			models.CategoryKubernetes, fmt.Sprintf("Kubernetes %s manifest", rk.display), rk.severity,
			kinds[rk.kind],
			fmt.Sprintf("Found %s manifest.", rk.kind), fmt.Sprintf("Missing %s manifest.", rk.kind),
		))
	}

	findings = append(findings, newFinding(
		models.CategoryKubernetes, "Service exposes app (NodePort/LoadBalancer)", models.SeverityWarning,
		matcher.ContainsAny(serviceText.String(), []string{"type: loadbalancer", "type: nodeport"}),
		"Service type exposes app.", "No NodePort/LoadBalancer detected.",
	))

	secretEnvOK := matcher.ContainsAny(secretsText.String(), llmSecretKeys) ||
		strings.Contains(secretsText.String(), "secretkeyref")
	findings = append(findings, newFinding(
		models.CategoryKubernetes, "LLM API key stored in Secret", models.SeverityCritical,
		secretEnvOK,
		"Secret references LLM key.", "No LLM key found in Secret manifest.",
	))

	charts := finder.FilesMatching("Chart.yaml", "charts/*/Chart.yaml")
	findings = append(findings, newFinding(
		models.CategoryKubernetes, "Helm chart present (optional)", models.SeverityInfo,
		len(charts) > 0,
		helmDetails(finder, charts), "No Helm chart found.",
	))

	return findings
}

// manifestFiles selects the YAML files that look like Kubernetes manifests.
func manifestFiles(finder *evidence.Finder) []fstree.File {
	var out []fstree.File
	for _, f := range finder.Index().Files() {
		ext := strings.ToLower(path.Ext(f.Name))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		if strings.Contains(strings.ToLower(f.Name), "k8s") {
			out = append(out, f)
			continue
		}
		for _, seg := range strings.Split(f.RelPath, "/") {
			if manifestDirs[strings.ToLower(seg)] {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// helmDetails names the chart when its metadata parses; a malformed
// Chart.yaml degrades to a generic detail line, never an error.
func helmDetails(finder *evidence.Finder, charts []fstree.File) string {
	if len(charts) == 0 {
		return ""
	}
	var meta struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal([]byte(finder.ReadText(charts[0])), &meta); err != nil {
		logger.WithError(err).WithField("path", charts[0].RelPath).Debug("unparseable Chart.yaml")
		return "Helm chart found."
	}
	if meta.Name == "" {
		return "Helm chart found."
	}
	if meta.Version != "" {
		return fmt.Sprintf("Helm chart found (%s %s).", meta.Name, meta.Version)
	}
	return fmt.Sprintf("Helm chart found (%s).", meta.Name)
}
