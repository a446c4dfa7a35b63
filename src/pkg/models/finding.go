package models

// Severity classifies how much a failed check should hurt the score.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Category is one of the seven fixed audit domains. The catalogue order of
// categories (Docker first, Docs last) is part of the output contract.
type Category string

const (
	CategoryDocker        Category = "Docker"
	CategoryCICD          Category = "CI/CD"
	CategoryQuality       Category = "Quality"
	CategoryIaC           Category = "IaC"
	CategoryKubernetes    Category = "Kubernetes"
	CategoryObservability Category = "Observability"
	CategoryDocs          Category = "Docs"
)

// Finding represents a single evaluated expectation.
// Severity and Name are fixed per check definition; only Passed and Details
// vary with repository content.
type Finding struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Severity Severity `json:"severity"`
	Details  string   `json:"details"`
}
