package main

import (
	"context"
	"fmt"

	"github.com/gh-nvat/devops-maturitychk/src/internal/runner"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/checks"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/render"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/report"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/scoring"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/trace"
	log "github.com/sirupsen/logrus"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "run",
})

func run(ctx context.Context, opts *runner.Options) error {
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}
	logger.WithField("opts", opts).Debug("Running..")

	// Initialize tracer
	shutdown, err := trace.InitTracer("devops-maturitychk", opts.EnableExportPerformanceReport, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer shutdown()

	// Validate options
	if err := validateOptions(opts); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	appRunner, err := initialize(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	rep, err := appRunner.Process(ctx)
	if err != nil {
		return err
	}

	if err := appRunner.Output(rep); err != nil {
		return fmt.Errorf("failed to output: %w", err)
	}

	if opts.FailOnCritical && rep.HasFailedCritical() {
		return runner.ErrCriticalFindings
	}
	return nil
}

// initialize wires the fixed catalogue, the scoring engine and the selected
// renderer into a runner.
func initialize(opts *runner.Options) (*runner.Runner, error) {
	var renderer render.Renderer = render.HumanRenderer{NoColor: opts.NoColor}
	if opts.JSON {
		renderer = render.JSONRenderer{}
	}

	builder := report.NewBuilder(scoring.NewEngine(scoring.DefaultWeights))

	appRunner, err := runner.NewRunner(opts, checks.Catalogue(), builder, renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}
	return appRunner, nil
}

func validateOptions(opts *runner.Options) error {
	if opts.Path == "" {
		return fmt.Errorf("--path must not be empty")
	}
	if (opts.EnableExportReport || opts.EnableExportPerformanceReport) && opts.OutputDir == "" {
		return fmt.Errorf("--output-dir is required when export is enabled")
	}
	return nil
}
