package scoring

import (
	"math"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

// DefaultWeights is the fixed severity weight table. Critical gaps dominate
// the aggregate signal; this is policy, not an incidental default.
var DefaultWeights = map[models.Severity]float64{
	models.SeverityCritical: 3,
	models.SeverityWarning:  2,
	models.SeverityInfo:     1,
}

// Engine reduces a findings sequence to one weighted percentage. The weight
// table is injected at construction and never mutated.
type Engine struct {
	weights map[models.Severity]float64
}

func NewEngine(weights map[models.Severity]float64) *Engine {
	if weights == nil {
		weights = DefaultWeights
	}
	return &Engine{weights: weights}
}

// Score returns round(100 * passedWeight / totalWeight, 2), or 0.0 for an
// empty findings sequence.
func (e *Engine) Score(findings []models.Finding) float64 {
	var total, got float64
	for _, f := range findings {
		w := e.weights[f.Severity]
		total += w
		if f.Passed {
			got += w
		}
	}
	if total == 0 {
		return 0.0
	}
	return math.Round(got/total*100*100) / 100
}
