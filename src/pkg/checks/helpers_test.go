package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/fstree"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"github.com/stretchr/testify/require"
)

// newTestFinder builds an evidence finder over a throwaway tree described as
// relative path -> content.
func newTestFinder(t *testing.T, files map[string]string) *evidence.Finder {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	idx, err := fstree.NewIndex(root, nil)
	require.NoError(t, err)
	return evidence.NewFinder(idx)
}

// findingByName fails the test when the finding is absent: every declared
// check must appear in the output.
func findingByName(t *testing.T, findings []models.Finding, name string) models.Finding {
	t.Helper()
	for _, f := range findings {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("finding %q not present in %d findings", name, len(findings))
	return models.Finding{}
}
