package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservabilityCheckerFullWiring(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"k8s/prometheus-config.yaml":  "scrape_configs: []\n",
		"grafana/dashboards/llm.json": "{\"title\": \"LLM\"}\n",
		"requirements.txt":            "fastapi\nprometheus-client==0.20\n",
		"src/app/main.py":             "from prometheus_client import make_asgi_app\napp.mount('/metrics', make_asgi_app())\nLLM_LATENCY = Histogram('llm_latency_seconds', 'latency')\n",
	})

	findings := ObservabilityChecker{}.Check(finder)
	assert.Len(t, findings, 5)

	for _, name := range []string{
		"Prometheus config/manifests present",
		"Grafana dashboard present",
		"App dependencies include metrics client",
		"Metrics endpoint exposed",
		"LLM metrics instrumentation",
	} {
		assert.True(t, findingByName(t, findings, name).Passed, "expected %q to pass", name)
	}
}

func TestObservabilityCheckerGoProject(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"go.mod":                 "module example.com/app\n\nrequire github.com/prometheus/client_golang v1.20.0\n",
		"internal/http/serve.go": "mux.Handle(\"/metrics\", promhttp.Handler())\n",
	})

	findings := ObservabilityChecker{}.Check(finder)
	assert.True(t, findingByName(t, findings, "App dependencies include metrics client").Passed)
	assert.True(t, findingByName(t, findings, "Metrics endpoint exposed").Passed)
}

func TestObservabilityCheckerNothingWired(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"README.md": "# app\n",
	})

	findings := ObservabilityChecker{}.Check(finder)
	assert.Len(t, findings, 5)
	for _, f := range findings {
		assert.False(t, f.Passed, "expected %q to fail with no observability wiring", f.Name)
	}
}
