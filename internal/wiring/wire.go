package wiring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/cloudsecure-ai/cloudsecure/internal/adapters/llm"
	"github.com/cloudsecure-ai/cloudsecure/internal/adapters/llm/providers/groq"
	"github.com/cloudsecure-ai/cloudsecure/internal/analysis"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/audit"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/config"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/ratelimit"
	"github.com/cloudsecure-ai/cloudsecure/internal/pipelines"
	"github.com/cloudsecure-ai/cloudsecure/internal/report"
	"github.com/cloudsecure-ai/cloudsecure/internal/source"
)

// Dependencies bundles everything the analyzer run needs.
type Dependencies struct {
	Provider    llm.LLMProvider
	Classifier  *analysis.Classifier
	Pipeline    *pipelines.AnalysisPipeline
	FileSource  *source.FileSource
	Renderer    *report.HTMLRenderer
	AuditLogger *audit.StructuredRunLogger
}

// Container wires dependencies from configuration.
type Container struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	return &Container{cfg: cfg, logger: logger}
}

// AnalyzerDependencies builds the full classification pipeline stack.
func (c *Container) AnalyzerDependencies() (*Dependencies, error) {
	provider, err := groq.NewGroqProvider(groq.GroqConfig{
		APIKey:      c.cfg.Groq.APIKey,
		BaseURL:     c.cfg.Groq.BaseURL,
		Model:       c.cfg.Groq.Model,
		Temperature: c.cfg.Groq.Temperature,
		MaxTokens:   c.cfg.Groq.MaxTokens,
		TimeoutSec:  c.cfg.Groq.TimeoutSec,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create groq provider: %w", err)
	}

	limiter := ratelimit.NewBackendRateLimiter(rate.Limit(c.cfg.Pipeline.RatePerSec), c.cfg.Pipeline.Burst)
	classifier := analysis.NewClassifier(provider, limiter, time.Duration(c.cfg.Groq.TimeoutSec)*time.Second)

	renderer, err := report.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	auditLogger := audit.NewStructuredRunLogger(c.logger)
	pipeline := pipelines.NewAnalysisPipeline(classifier, auditLogger, c.logger,
		c.cfg.Pipeline.Workers, c.cfg.Pipeline.QueueDepth)

	return &Dependencies{
		Provider:    provider,
		Classifier:  classifier,
		Pipeline:    pipeline,
		FileSource:  source.NewFileSource(c.logger),
		Renderer:    renderer,
		AuditLogger: auditLogger,
	}, nil
}

// CloudTrailSource builds the remote event source used by fetchlogs.
func (c *Container) CloudTrailSource(ctx context.Context) (*source.CloudTrailSource, error) {
	return source.NewCloudTrailSource(ctx, c.cfg.AWS.Region, c.logger)
}
