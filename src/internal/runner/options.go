package runner

import (
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Options holds the resolved CLI configuration for one audit run.
type Options struct {
	// Path is the repository root to scan.
	Path string
	// JSON selects the JSON renderer instead of human text.
	JSON bool
	// FailOnCritical maps a failed critical finding to exit code 1.
	FailOnCritical bool

	Debug   bool
	NoColor bool

	// OutputDir receives exported files when any export flag is set.
	OutputDir                     string
	EnableExportReport            bool
	EnableExportPerformanceReport bool
}

// EnvDefaults seeds flag defaults from DEVOPS_MATURITYCHK_* environment
// variables. Only ambient settings live here; the rule catalogue itself is
// compiled in and has no configuration surface.
type EnvDefaults struct {
	OutputDir string `envconfig:"OUTPUT_DIR" default:"./output"`
	Debug     bool   `envconfig:"DEBUG"`
	NoColor   bool   `envconfig:"NO_COLOR"`
}

// LoadEnvDefaults reads the environment, falling back to the struct
// defaults when a variable is unset or malformed.
func LoadEnvDefaults() EnvDefaults {
	var d EnvDefaults
	if err := envconfig.Process("devops_maturitychk", &d); err != nil {
		log.WithError(err).Warn("ignoring malformed environment configuration")
		d = EnvDefaults{OutputDir: "./output"}
	}
	return d
}
