package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudsecure-ai/cloudsecure/internal/analysis"
	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/config"
	"github.com/cloudsecure-ai/cloudsecure/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", os.Getenv("CLOUDSECURE_CONFIG_PATH"), "path to config file")
	inputPath := flag.String("input", "", "input log artifact (overrides config)")
	outputPath := flag.String("output", "", "report output path (overrides config)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	classifier := apperrors.NewErrorClassifier(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "load_config"))
	}
	if *inputPath != "" {
		cfg.Report.InputPath = *inputPath
	}
	if *outputPath != "" {
		cfg.Report.OutputPath = *outputPath
	}

	if err := cfg.RequireCredentials(); err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "check_credentials"))
	}

	container := wiring.NewContainer(cfg, logger)
	deps, err := container.AnalyzerDependencies()
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "wire_dependencies"))
	}

	events, err := deps.FileSource.Load(cfg.Report.InputPath)
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "load_events"))
	}
	if len(events) == 0 {
		logger.Info("no events to analyze, nothing to report", "input", cfg.Report.InputPath)
		return 0
	}

	logger.Info("starting analysis",
		"run_id", deps.AuditLogger.RunID(),
		"events", len(events),
		"model", cfg.Groq.Model,
		"workers", cfg.Pipeline.Workers,
		"version", cfg.ServiceVersion)

	assessments, err := deps.Pipeline.Run(ctx, events)
	if err != nil {
		// Cancellation discards partial work; no partial report is written.
		return classifier.LogFatal(ctx, classifier.Classify(err, "run_pipeline"))
	}

	counts := analysis.Aggregate(assessments)
	rep, err := domain.NewReport(deps.AuditLogger.RunID(), time.Now(), events, assessments, counts)
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "build_report"))
	}

	if err := deps.Renderer.WriteFile(cfg.Report.OutputPath, rep); err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "write_report"))
	}

	for _, sev := range domain.Severities {
		logger.Info("severity summary", "severity", string(sev), "count", counts[sev])
	}
	logger.Info("report written", "path", cfg.Report.OutputPath, "events", len(events))
	return 0
}
