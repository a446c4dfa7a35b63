package checks

import (
	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	log "github.com/sirupsen/logrus"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "checks",
})

// Checker evaluates one audit category against the file-tree snapshot and
// returns its findings in catalogue-defined order. Checkers are pure and
// mutually independent: evidence relevant to one category must never change
// another category's findings.
type Checker interface {
	Category() models.Category
	Check(finder *evidence.Finder) []models.Finding
}

// Catalogue returns the fixed, versioned checker list in report order:
// Docker, CI/CD, Quality, IaC, Kubernetes, Observability, Docs. The order is
// part of the external contract, so it is registered here structurally
// rather than assembled ad hoc by callers.
func Catalogue() []Checker {
	return []Checker{
		DockerChecker{},
		CICDChecker{},
		QualityChecker{},
		IaCChecker{},
		KubernetesChecker{},
		ObservabilityChecker{},
		DocsChecker{},
	}
}

// newFinding builds one finding, selecting the details line by outcome.
func newFinding(cat models.Category, name string, sev models.Severity, passed bool, passDetails, failDetails string) models.Finding {
	details := failDetails
	if passed {
		details = passDetails
	}
	return models.Finding{
		Category: cat,
		Name:     name,
		Passed:   passed,
		Severity: sev,
		Details:  details,
	}
}
