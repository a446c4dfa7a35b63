package checks

import (
	"fmt"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/matcher"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
)

var composeFileGlobs = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

// DockerChecker audits containerization: Dockerfile presence, base-image
// hygiene and a Compose file.
type DockerChecker struct{}

var _ Checker = DockerChecker{}

func (DockerChecker) Category() models.Category {
	return models.CategoryDocker
}

func (c DockerChecker) Check(finder *evidence.Finder) []models.Finding {
	var findings []models.Finding

	dockerfiles := finder.FilesNamed("dockerfile")
	findings = append(findings, newFinding(
		models.CategoryDocker, "Dockerfile exists", models.SeverityCritical,
		len(dockerfiles) > 0,
		"Found Dockerfile(s).", "No Dockerfile found.",
	))

	findings = append(findings, newFinding(
		models.CategoryDocker, ".dockerignore exists", models.SeverityWarning,
		finder.HasFileNamed(".dockerignore"),
		"Found .dockerignore.", "Missing .dockerignore (recommended).",
	))

	// Per-file sub-checks require a Dockerfile to exist; they are the only
	// checks that may be absent from the output.
	for _, df := range dockerfiles {
		content := finder.ReadText(df)

		image, hasFrom := matcher.DockerfileBaseImage(content)
		findings = append(findings, newFinding(
			models.CategoryDocker, fmt.Sprintf("%s: has FROM", df.RelPath), models.SeverityCritical,
			hasFrom,
			"Base image is specified.", "Missing FROM instruction.",
		))

		latest := hasFrom && matcher.UsesLatestTag(image)
		findings = append(findings, newFinding(
			models.CategoryDocker, fmt.Sprintf("%s: avoids latest tag", df.RelPath), models.SeverityWarning,
			!latest,
			"Pinned image tag detected.", "Image uses latest tag (pin versions).",
		))

		findings = append(findings, newFinding(
			models.CategoryDocker, fmt.Sprintf("%s: non-root USER set", df.RelPath), models.SeverityWarning,
			matcher.HasUserInstruction(content),
			"USER instruction found.", "No USER instruction found (runs as root by default).",
		))

		findings = append(findings, newFinding(
			models.CategoryDocker, fmt.Sprintf("%s: HEALTHCHECK present", df.RelPath), models.SeverityInfo,
			matcher.HasHealthcheck(content),
			"HEALTHCHECK found.", "No HEALTHCHECK found.",
		))
	}

	findings = append(findings, newFinding(
		models.CategoryDocker, "Compose file exists", models.SeverityInfo,
		finder.HasAnyFile(composeFileGlobs...),
		"Found Docker Compose file.", "No Compose file found (optional).",
	))

	return findings
}
