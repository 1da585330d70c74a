package pipelines

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cloudsecure-ai/cloudsecure/internal/analysis"
	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/audit"
)

// analysisJob pairs an event with its input index so results can be
// reassembled in input order regardless of worker interleaving.
type analysisJob struct {
	index int
	event domain.EventRecord
}

// AnalysisPipeline drives build -> classify -> parse for every event and
// reassembles the assessments index-aligned with the input. A failed
// classification is recovered by recording the sentinel assessment for
// that event; one bad event never aborts the run.
type AnalysisPipeline struct {
	classifier  *analysis.Classifier
	auditLogger *audit.StructuredRunLogger
	logger      *slog.Logger
	workerCount int
	queueDepth  int
}

func NewAnalysisPipeline(classifier *analysis.Classifier, auditLogger *audit.StructuredRunLogger, logger *slog.Logger, workerCount, queueDepth int) *AnalysisPipeline {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueDepth < 1 {
		queueDepth = 1
	}
	return &AnalysisPipeline{
		classifier:  classifier,
		auditLogger: auditLogger,
		logger:      logger,
		workerCount: workerCount,
		queueDepth:  queueDepth,
	}
}

// Run assesses every event exactly once and returns the assessments in
// input order, always the same length as events. If the context is
// cancelled mid-run the partial work is discarded and ctx.Err() returned.
func (p *AnalysisPipeline) Run(ctx context.Context, events []domain.EventRecord) ([]domain.Assessment, error) {
	results := make([]domain.Assessment, len(events))
	if len(events) == 0 {
		return results, nil
	}

	workers := p.workerCount
	if workers > len(events) {
		workers = len(events)
	}

	jobs := make(chan analysisJob, p.queueDepth)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, jobs, results)
		}()
	}

feed:
	for i, event := range events {
		select {
		case jobs <- analysisJob{index: i, event: event}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// worker processes jobs until the channel closes or the context is done.
// Each job writes to its own index in results, so no locking is needed.
func (p *AnalysisPipeline) worker(ctx context.Context, jobs <-chan analysisJob, results []domain.Assessment) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-jobs:
			if !ok {
				return
			}
			results[job.index] = p.assess(ctx, job)
		}
	}
}

// assess runs the per-event pipeline. Any failure up to and including the
// backend call degrades to the sentinel assessment; parsing cannot fail.
func (p *AnalysisPipeline) assess(ctx context.Context, job analysisJob) domain.Assessment {
	eventName := job.event.EventName()

	prompt, err := analysis.BuildPrompt(job.event)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build prompt, recording sentinel",
			"event_index", job.index, "event_name", eventName, "error", err)
		return p.record(ctx, job, domain.DefaultAssessment(), true)
	}

	raw, err := p.classifier.Classify(ctx, prompt)
	if err != nil {
		p.logger.ErrorContext(ctx, "classification failed, recording sentinel",
			"event_index", job.index, "event_name", eventName, "error", err)
		return p.record(ctx, job, domain.DefaultAssessment(), true)
	}

	assessment := analysis.ParseAssessment(raw)
	p.logger.InfoContext(ctx, "event assessed",
		"event_index", job.index, "event_name", eventName, "severity", assessment.Severity)
	return p.record(ctx, job, assessment, false)
}

func (p *AnalysisPipeline) record(ctx context.Context, job analysisJob, assessment domain.Assessment, sentinel bool) domain.Assessment {
	if p.auditLogger != nil {
		p.auditLogger.LogAssessment(ctx, job.index, job.event, assessment, sentinel)
	}
	return assessment
}
