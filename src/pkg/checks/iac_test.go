package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIaCCheckerTerraform(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"infra/main.tf": `resource "aws_vpc" "main" {
  cidr_block = "10.0.0.0/16"
}

resource "aws_db_instance" "postgres" {
  engine = "postgres"
}

resource "aws_ecs_cluster" "app" {}
`,
	})

	findings := IaCChecker{}.Check(finder)
	assert.Len(t, findings, 4)

	iac := findingByName(t, findings, "Infrastructure as Code present")
	assert.True(t, iac.Passed)
	assert.Equal(t, "Terraform: 1 file(s)", iac.Details)

	assert.True(t, findingByName(t, findings, "IaC defines compute resources").Passed)
	assert.True(t, findingByName(t, findings, "IaC defines networking resources").Passed)
	assert.True(t, findingByName(t, findings, "IaC defines database resources").Passed)
}

func TestIaCCheckerMixedFlavors(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"deploy/app.bicep": "param location string\n",
		"template.yaml":    "AWSTemplateFormatVersion: '2010-09-09'\n",
	})

	findings := IaCChecker{}.Check(finder)
	iac := findingByName(t, findings, "Infrastructure as Code present")
	assert.True(t, iac.Passed)
	assert.Equal(t, "Bicep: 1 file(s); CloudFormation-like templates: 1 file(s)", iac.Details)
}

func TestIaCCheckerNoFiles(t *testing.T) {
	finder := newTestFinder(t, map[string]string{
		"main.py": "print('hi')\n",
	})

	findings := IaCChecker{}.Check(finder)
	assert.Len(t, findings, 4)
	for _, f := range findings {
		assert.False(t, f.Passed, "expected %q to fail without IaC files", f.Name)
	}
	assert.Equal(t, "No IaC files detected.", findingByName(t, findings, "Infrastructure as Code present").Details)
}
