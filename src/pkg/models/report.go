package models

// Report is the engine's sole output value. It is constructed once per run
// and never mutated afterward; renderers only read it.
type Report struct {
	// Root is the canonical (absolute) path that was scanned.
	Root string `json:"root"`

	// Score is the weighted compliance percentage in [0, 100],
	// rounded to two decimals.
	Score float64 `json:"score"`

	Passed int `json:"passed"`
	Failed int `json:"failed"`

	// Checks holds every finding in catalogue order: Docker first, then
	// CI/CD, Quality, IaC, Kubernetes, Observability, Docs.
	Checks []Finding `json:"checks"`
}

// HasFailedCritical reports whether any critical-severity check failed.
func (r *Report) HasFailedCritical() bool {
	for _, c := range r.Checks {
		if !c.Passed && c.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
