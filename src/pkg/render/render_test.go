package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *models.Report {
	return &models.Report{
		Root:   "/repo",
		Score:  42.86,
		Passed: 1,
		Failed: 2,
		Checks: []models.Finding{
			{Category: models.CategoryDocker, Name: "Dockerfile exists", Passed: true,
				Severity: models.SeverityCritical, Details: "Found Dockerfile(s)."},
			{Category: models.CategoryDocker, Name: ".dockerignore exists", Passed: false,
				Severity: models.SeverityWarning, Details: "Missing .dockerignore (recommended)."},
			{Category: models.CategoryDocs, Name: "Architecture documentation present", Passed: false,
				Severity: models.SeverityInfo, Details: "No architecture docs detected."},
		},
	}
}

func TestJSONRendererSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	for _, field := range []string{"root", "score", "passed", "failed", "checks"} {
		assert.Contains(t, decoded, field)
	}

	checks, ok := decoded["checks"].([]any)
	require.True(t, ok)
	require.Len(t, checks, 3)

	first, ok := checks[0].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"category", "name", "passed", "severity", "details"} {
		assert.Contains(t, first, field)
	}
	assert.Equal(t, "Docker", first["category"])
	assert.Equal(t, "critical", first["severity"])
}

func TestJSONRendererIsByteStable(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&a, sampleReport()))
	require.NoError(t, JSONRenderer{}.Render(&b, sampleReport()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestHumanRendererLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HumanRenderer{NoColor: true}.Render(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "DevOps Verification Report")
	assert.Contains(t, out, "/repo")
	assert.Contains(t, out, "42.86%")
	assert.Contains(t, out, "[Docker]")
	assert.Contains(t, out, "[Docs]")
	assert.Contains(t, out, "Recommendations:")

	// Categories come out in report order.
	assert.Less(t, strings.Index(out, "[Docker]"), strings.Index(out, "[Docs]"))

	// Failed warning shows up as a recommendation; failed info does not.
	recSection := out[strings.Index(out, "Recommendations:"):]
	assert.Contains(t, recSection, ".dockerignore exists")
	assert.NotContains(t, recSection, "Architecture documentation present")
}

func TestMarkdownRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownRenderer{}.Render(&buf, sampleReport()))
	out := buf.String()

	assert.Contains(t, out, "# DevOps Verification Report")
	assert.Contains(t, out, "## Docker")
	assert.Contains(t, out, "## Docs")
	assert.Contains(t, out, "## Recommendations")
	assert.Contains(t, out, "**Dockerfile exists**")
	assert.Contains(t, out, "42.86%")
}
