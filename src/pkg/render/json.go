package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

// JSONRenderer emits the stable machine-readable schema: root, score,
// passed, failed, checks[]. Output for an unchanged file tree is
// byte-identical across runs.
type JSONRenderer struct{}

var _ Renderer = JSONRenderer{}

func (JSONRenderer) Render(w io.Writer, r *models.Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
