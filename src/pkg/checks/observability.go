package checks

import (
	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

var (
	prometheusGlobs = []string{
		"prometheus.yml",
		"prometheus.yaml",
		"k8s/prometheus*.yml",
		"k8s/prometheus*.yaml",
		"manifests/prometheus*.yml",
		"manifests/prometheus*.yaml",
	}

	grafanaGlobs = []string{
		"grafana/*.json",
		"dashboards/*.json",
		"grafana/dashboards/*.json",
	}

	dependencyManifestGlobs = []string{
		"pyproject.toml",
		"requirements*.txt",
		"poetry.lock",
		"Pipfile",
		"Pipfile.lock",
		"package.json",
		"go.mod",
	}

	metricsClientNeedles = []string{
		"prometheus_client",
		"prometheus-client",
		"prom-client",
		"prometheus/client_golang",
	}

	appSourceGlobs = []string{
		"*.py", "**/*.py",
		"*.go", "**/*.go",
		"*.js", "**/*.js",
		"*.ts", "**/*.ts",
	}

	llmMetricKeywords = []string{"llm", "token", "latency"}
)

// ObservabilityChecker audits monitoring wiring: Prometheus config, Grafana
// dashboards, a metrics client dependency, an exposed /metrics endpoint and
// LLM-specific instrumentation keywords.
type ObservabilityChecker struct{}

var _ Checker = ObservabilityChecker{}

func (ObservabilityChecker) Category() models.Category {
	return models.CategoryObservability
}

func (c ObservabilityChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	findings = append(findings, newFinding(
		models.CategoryObservability, "Prometheus config/manifests present", models.SeverityWarning,
		finder.HasAnyFile(prometheusGlobs...),
		"Prometheus config/manifests found.", "No Prometheus config/manifests detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryObservability, "Grafana dashboard present", models.SeverityWarning,
		finder.HasAnyFile(grafanaGlobs...),
		"Grafana dashboard(s) found.", "No Grafana dashboard JSON detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryObservability, "App dependencies include metrics client", models.SeverityWarning,
		finder.TextInFiles(metricsClientNeedles, dependencyManifestGlobs),
		"Metrics client dependency detected.", "No metrics client dependency detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryObservability, "Metrics endpoint exposed", models.SeverityWarning,
		finder.TextInFiles([]string{"/metrics"}, appSourceGlobs),
		"Metrics endpoint found.", "No /metrics endpoint detected.",
	))

	findings = append(findings, newFinding(
		models.CategoryObservability, "LLM metrics instrumentation", models.SeverityInfo,
		finder.TextInFiles(llmMetricKeywords, appSourceGlobs),
		"LLM metric keywords detected.", "No LLM-specific metrics detected.",
	))

	return findings
}
