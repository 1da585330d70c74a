package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
)

// AssessmentEvent is the audit record emitted for each assessed event.
type AssessmentEvent struct {
	RunID      string
	EventIndex int
	EventName  string
	UserName   string
	SourceIP   string
	Severity   domain.Severity
	Sentinel   bool // true when classification failed and defaults were substituted
	Timestamp  time.Time
	Checksum   string
}

// StructuredRunLogger emits one structured audit record per assessed event
// so a run's verdicts are traceable independently of the rendered report.
type StructuredRunLogger struct {
	logger *slog.Logger
	runID  string
}

func NewStructuredRunLogger(logger *slog.Logger) *StructuredRunLogger {
	return &StructuredRunLogger{
		logger: logger,
		runID:  uuid.New().String(),
	}
}

// RunID identifies this run in audit records and the report.
func (l *StructuredRunLogger) RunID() string {
	return l.runID
}

func (l *StructuredRunLogger) LogAssessment(ctx context.Context, index int, event domain.EventRecord, assessment domain.Assessment, sentinel bool) {
	record := &AssessmentEvent{
		RunID:      l.runID,
		EventIndex: index,
		EventName:  event.EventName(),
		UserName:   event.UserName(),
		SourceIP:   event.SourceIP(),
		Severity:   assessment.Severity,
		Sentinel:   sentinel,
		Timestamp:  time.Now(),
	}
	record.Checksum = l.generateChecksum(record)

	l.logger.LogAttrs(ctx, slog.LevelInfo, "assessment_recorded",
		slog.String("run_id", record.RunID),
		slog.Int("event_index", record.EventIndex),
		slog.String("severity", string(record.Severity)),
		slog.Bool("sentinel", record.Sentinel),
		slog.Group("event",
			slog.String("name", record.EventName),
			slog.String("user", record.UserName),
			slog.String("source_ip", record.SourceIP),
		),
		slog.String("checksum", record.Checksum),
	)
}

func (l *StructuredRunLogger) generateChecksum(record *AssessmentEvent) string {
	data := map[string]any{
		"run_id":      record.RunID,
		"event_index": record.EventIndex,
		"event_name":  record.EventName,
		"severity":    record.Severity,
		"sentinel":    record.Sentinel,
		"timestamp":   record.Timestamp.Unix(),
	}

	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return hex.EncodeToString(hash[:])
}
