package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/config"
	"github.com/cloudsecure-ai/cloudsecure/internal/source"
	"github.com/cloudsecure-ai/cloudsecure/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", os.Getenv("CLOUDSECURE_CONFIG_PATH"), "path to config file")
	outputPath := flag.String("output", "sample_logs/real_cloudtrail_events.json", "artifact output path")
	hours := flag.Int("hours", 0, "lookback window in hours (overrides config)")
	maxEvents := flag.Int("max-events", 0, "maximum events to fetch (overrides config)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	classifier := apperrors.NewErrorClassifier(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "load_config"))
	}
	if *hours > 0 {
		cfg.AWS.LookbackHours = *hours
	}
	if *maxEvents > 0 {
		cfg.AWS.MaxEvents = *maxEvents
	}

	container := wiring.NewContainer(cfg, logger)
	trail, err := container.CloudTrailSource(ctx)
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "create_source"))
	}

	if _, err := trail.VerifyIdentity(ctx); err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "verify_identity"))
	}

	lookback := time.Duration(cfg.AWS.LookbackHours) * time.Hour
	events, err := trail.Fetch(ctx, lookback, cfg.AWS.MaxEvents)
	if err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "fetch_events"))
	}
	if len(events) == 0 {
		logger.Info("no events found in lookback window, try a larger -hours value",
			"hours", cfg.AWS.LookbackHours)
		return 0
	}

	files := source.NewFileSource(logger)
	if err := files.Write(*outputPath, events); err != nil {
		return classifier.LogFatal(ctx, classifier.Classify(err, "write_artifact"))
	}

	logger.Info("fetch complete, run the analyzer next",
		"artifact", *outputPath, "events", len(events))
	return 0
}
