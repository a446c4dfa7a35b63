package trace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "trace",
})

const performanceReportFile = "performance-report.json"

// tracer defaults to a no-op; InitTracer swaps in a real provider when the
// performance report export is enabled.
var tracer trace.Tracer = noop.NewTracerProvider().Tracer("devops-maturitychk")

// InitTracer sets up span export to a JSON file in outputDir. When export is
// disabled every span is a no-op. The returned shutdown function flushes the
// exporter and must be deferred by the caller.
func InitTracer(serviceName string, enableExport bool, outputDir string) (func(), error) {
	if !enableExport {
		return func() {}, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := os.Create(filepath.Join(outputDir, performanceReportFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create performance report file: %w", err)
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(f),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer(serviceName)

	shutdown := func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Warn("failed to shut down tracer provider")
		}
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("failed to close performance report file")
		}
	}
	return shutdown, nil
}

// StartSpan starts a span on the process-wide tracer.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}
