package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullPipeline = `name: ci
on:
  pull_request:
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - run: pytest
      - run: docker build -t app .
      - uses: aquasecurity/trivy-action@master
      - uses: docker/login-action@v3
      - run: docker push ghcr.io/org/app
      - run: kubectl apply -f k8s/
`

var cicdCheckNames = []string{
	"GitHub Actions workflows exist",
	"Pipeline has triggers",
	"Pipeline checks out code",
	"Pipeline runs tests",
	"Pipeline has build/package step",
	"Pipeline has security scanning",
	"Pipeline pushes image to registry",
	"Pipeline deploys application",
}

func TestCICDCheckerFullPipeline(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		".github/workflows/ci.yml": fullPipeline,
	})

	findings := CICDChecker{}.Check(finder)
	assert.Len(t, findings, 8)

	for _, name := range cicdCheckNames {
		assert.True(t, findingByName(t, findings, name).Passed, "expected %q to pass", name)
	}
}

func TestCICDCheckerNoWorkflows(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"README.md": "# app\n",
	})

	findings := CICDChecker{}.Check(finder)
	assert.Len(t, findings, 8)

	// Every declared check still appears, all failed.
	for _, f := range findings {
		assert.False(t, f.Passed, "expected %q to fail with no workflows", f.Name)
	}
}

func TestCICDCheckerIgnoresYAMLOutsideWorkflowsDir(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		".github/workflows/nested/ci.yml": fullPipeline,
		".github/ci.yml":                  fullPipeline,
		"ci.yml":                          fullPipeline,
	})

	findings := CICDChecker{}.Check(finder)
	assert.False(t, findingByName(t, findings, "GitHub Actions workflows exist").Passed)
}

func TestCICDCheckerOrderIsStable(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		".github/workflows/ci.yaml": "on: [push]\n",
	})

	findings := CICDChecker{}.Check(finder)
	for i, f := range findings {
		assert.Equal(t, cicdCheckNames[i], f.Name)
	}
}
