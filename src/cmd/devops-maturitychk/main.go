package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gh-nvat/devops-maturitychk/src/internal/runner"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, runner.ErrInvalidPath) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// newRootCmd creates the root command, parse args from CLI
func newRootCmd() *cobra.Command {
	opts := &runner.Options{}
	env := runner.LoadEnvDefaults()

	cmd := &cobra.Command{
		Use:   "devops-maturitychk",
		Short: "DevOps maturity audit for project repositories",
		Long: `devops-maturitychk audits a project directory against a fixed catalogue of
DevOps maturity expectations (containerization, CI/CD pipeline shape, testing
and lint presence, IaC, Kubernetes manifests, observability wiring, docs) and
produces a weighted compliance score plus an itemized report.

Every run is a full, stateless, offline re-scan: the scanned repository is
never modified and no network calls are made.`,
		Version:      fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", ".", "Path to repository root")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print JSON output")
	cmd.Flags().BoolVar(&opts.FailOnCritical, "fail-on-critical", false,
		"Exit with code 1 if any critical check fails")
	cmd.Flags().BoolVar(&opts.Debug, "debug", env.Debug, "Debug mode")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", env.NoColor, "Disable colored output")

	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", env.OutputDir,
		"Output directory in case the tool needs to export files")
	cmd.Flags().BoolVar(&opts.EnableExportReport, "enable-export-report", false,
		"Enable export report (json and markdown files to output dir)")
	cmd.Flags().BoolVar(&opts.EnableExportPerformanceReport, "enable-export-performance-report", false,
		"Enable export performance report (json file to output dir)")

	return cmd
}
