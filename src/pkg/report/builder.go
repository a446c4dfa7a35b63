package report

import (
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/scoring"
	"github.com/samber/lo"
)

// Builder assembles the immutable Report from the concatenated checker
// output. Pure aggregation: no I/O, no randomness.
type Builder struct {
	scorer *scoring.Engine
}

func NewBuilder(scorer *scoring.Engine) *Builder {
	if scorer == nil {
		scorer = scoring.NewEngine(nil)
	}
	return &Builder{scorer: scorer}
}

// Build packages the findings, which must already be in catalogue order,
// into a Report for root.
func (b *Builder) Build(root string, findings []models.Finding) *models.Report {
	if findings == nil {
		findings = []models.Finding{}
	}
	passed := lo.CountBy(findings, func(f models.Finding) bool { return f.Passed })
	return &models.Report{
		Root:   root,
		Score:  b.scorer.Score(findings),
		Passed: passed,
		Failed: len(findings) - passed,
		Checks: findings,
	}
}
