package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gh-nvat/devops-maturitychk/src/pkg/checks"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/evidence"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/fstree"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/models"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/render"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/report"
	"github.com/gh-nvat/devops-maturitychk/src/pkg/trace"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "runner",
})

var (
	// ErrInvalidPath aborts the run before any checker executes; the CLI
	// shell maps it to exit code 2.
	ErrInvalidPath = errors.New("path does not exist or is not a directory")

	// ErrCriticalFindings is returned after a complete run when
	// --fail-on-critical is set and a critical check failed; exit code 1.
	ErrCriticalFindings = errors.New("at least one critical check failed")
)

const (
	reportJSONFile     = "report.json"
	reportMarkdownFile = "report.md"
)

// Runner drives one audit: index the tree once, evaluate every category
// checker against the shared snapshot, score, render, and optionally export.
type Runner struct {
	Options  *Options
	Checkers []checks.Checker
	Builder  *report.Builder
	Renderer render.Renderer
}

func NewRunner(options *Options, checkers []checks.Checker, builder *report.Builder, renderer render.Renderer) (*Runner, error) {
	if options == nil || builder == nil || renderer == nil || len(checkers) == 0 {
		return nil, fmt.Errorf("options, checkers, builder, and renderer are required")
	}
	return &Runner{
		Options:  options,
		Checkers: checkers,
		Builder:  builder,
		Renderer: renderer,
	}, nil
}

// Process runs the full pipeline and returns the immutable report.
func (r *Runner) Process(ctx context.Context) (*models.Report, error) {
	ctx, span := trace.StartSpan(ctx, "Process")
	defer span.End()

	root, err := filepath.Abs(r.Options.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", r.Options.Path, err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid path %s: %w", root, ErrInvalidPath)
	}

	_, idxSpan := trace.StartSpan(ctx, "BuildIndex")
	idx, err := fstree.NewIndex(root, fstree.DefaultIgnoreDirs)
	idxSpan.End()
	if err != nil {
		return nil, fmt.Errorf("invalid path %s: %w", root, ErrInvalidPath)
	}
	logger.WithFields(log.Fields{"root": root, "files": idx.Len()}).Debug("file tree indexed")

	findings := r.runCheckers(ctx, evidence.NewFinder(idx))

	_, buildSpan := trace.StartSpan(ctx, "BuildReport")
	rep := r.Builder.Build(root, findings)
	buildSpan.End()

	return rep, nil
}

// runCheckers evaluates the categories concurrently against the shared
// read-only snapshot. Results land in per-category slots so the findings
// re-assemble in catalogue order regardless of goroutine scheduling. A
// panicking checker loses its own findings but never the others: checker
// independence doubles as fault isolation.
func (r *Runner) runCheckers(ctx context.Context, finder *evidence.Finder) []models.Finding {
	results := make([][]models.Finding, len(r.Checkers))

	g, ctx := errgroup.WithContext(ctx)
	for i, checker := range r.Checkers {
		g.Go(func() error {
			_, span := trace.StartSpan(ctx, fmt.Sprintf("Check %s", checker.Category()))
			defer span.End()
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(log.Fields{
						"category": checker.Category(),
						"panic":    rec,
					}).Error("checker panicked, dropping its findings")
				}
			}()
			results[i] = checker.Check(finder)
			return nil
		})
	}
	// Checkers never return errors; evidence-level failures are absorbed
	// into failed findings.
	_ = g.Wait()

	var findings []models.Finding
	for _, rs := range results {
		findings = append(findings, rs...)
	}
	return findings
}

// Output renders the report to stdout and handles the export options.
func (r *Runner) Output(rep *models.Report) error {
	if err := r.Renderer.Render(os.Stdout, rep); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if r.Options.EnableExportReport {
		if err := r.exportReport(rep); err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
	}
	return nil
}

// exportReport writes the JSON and Markdown renditions into the output dir.
func (r *Runner) exportReport(rep *models.Report) error {
	if err := os.MkdirAll(r.Options.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	exports := []struct {
		name     string
		renderer render.Renderer
	}{
		{reportJSONFile, render.JSONRenderer{}},
		{reportMarkdownFile, render.MarkdownRenderer{}},
	}
	for _, e := range exports {
		path := filepath.Join(r.Options.OutputDir, e.name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		renderErr := e.renderer.Render(f, rep)
		closeErr := f.Close()
		if renderErr != nil {
			return fmt.Errorf("failed to write %s: %w", path, renderErr)
		}
		if closeErr != nil {
			return fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		logger.WithField("path", path).Info("exported report")
	}
	return nil
}
