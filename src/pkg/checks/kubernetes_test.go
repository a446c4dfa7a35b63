package checks

import (
	"testing"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestKubernetesCheckerManifestTrio(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"k8s/deployment.yaml": "apiVersion: apps/v1\nkind: Deployment\nmetadata:\n  name: app\n",
		"k8s/service.yaml":    "apiVersion: v1\nkind: Service\nspec:\n  type: LoadBalancer\n",
		"k8s/secret.yaml":     "apiVersion: v1\nkind: Secret\nstringData:\n  OPENAI_API_KEY: placeholder\n",
	})

	findings := KubernetesChecker{}.Check(finder)

	assert.True(t, findingByName(t, findings, "Kubernetes manifests present").Passed)
	assert.True(t, findingByName(t, findings, "Kubernetes Deployment manifest").Passed)
	assert.True(t, findingByName(t, findings, "Kubernetes Service manifest").Passed)
	assert.True(t, findingByName(t, findings, "Kubernetes Secret manifest").Passed)
	assert.True(t, findingByName(t, findings, "Service exposes app (NodePort/LoadBalancer)").Passed)
	assert.True(t, findingByName(t, findings, "LLM API key stored in Secret").Passed)

	assert.False(t, findingByName(t, findings, "Kubernetes Configmap manifest").Passed)
	assert.False(t, findingByName(t, findings, "Helm chart present (optional)").Passed)
}

func TestKubernetesCheckerEmptyTree(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"README.md": "# app\n",
	})

	findings := KubernetesChecker{}.Check(finder)
	assert.Len(t, findings, 8)
	for _, f := range findings {
		assert.False(t, f.Passed, "expected %q to fail on an empty tree", f.Name)
	}
}

func TestKubernetesCheckerKindOrderAndSeverity(t *testing.T) {
	finder := newTestFinder(t, map[string]string{})

	findings := KubernetesChecker{}.Check(finder)

	wantNames := []string{
		"Kubernetes manifests present",
		"Kubernetes Configmap manifest",
		"Kubernetes Deployment manifest",
		"Kubernetes Secret manifest",
		"Kubernetes Service manifest",
		"Service exposes app (NodePort/LoadBalancer)",
		"LLM API key stored in Secret",
		"Helm chart present (optional)",
	}
	for i, f := range findings {
		assert.Equal(t, wantNames[i], f.Name)
	}

	assert.Equal(t, models.SeverityCritical, findingByName(t, findings, "Kubernetes Deployment manifest").Severity)
	assert.Equal(t, models.SeverityCritical, findingByName(t, findings, "Kubernetes Service manifest").Severity)
	assert.Equal(t, models.SeverityWarning, findingByName(t, findings, "Kubernetes Configmap manifest").Severity)
	assert.Equal(t, models.SeverityWarning, findingByName(t, findings, "Kubernetes Secret manifest").Severity)
}

func TestKubernetesCheckerSecretKeyRef(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"manifests/app-deployment.yml": `apiVersion: apps/v1
kind: Deployment
spec:
  template:
    spec:
      containers:
        - name: app
          env:
            - name: OPENAI_API_KEY
              valueFrom:
                secretKeyRef:
                  name: llm-secrets
                  key: api-key
`,
	})

	findings := KubernetesChecker{}.Check(finder)
	assert.True(t, findingByName(t, findings, "LLM API key stored in Secret").Passed)
}

func TestKubernetesCheckerHelmChartDetails(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"charts/myapp/Chart.yaml":     "apiVersion: v2\nname: myapp\nversion: 1.4.2\n",
		"charts/myapp/templates/x.md": "not yaml\n",
	})

	findings := KubernetesChecker{}.Check(finder)
	helm := findingByName(t, findings, "Helm chart present (optional)")
	assert.True(t, helm.Passed)
	assert.Equal(t, "Helm chart found (myapp 1.4.2).", helm.Details)
}

func TestKubernetesCheckerDetectsByFileName(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"infra/app-k8s.yaml": "kind: Deployment\n",
	})

	findings := KubernetesChecker{}.Check(finder)
	assert.True(t, findingByName(t, findings, "Kubernetes manifests present").Passed)
	assert.True(t, findingByName(t, findings, "Kubernetes Deployment manifest").Passed)
}
