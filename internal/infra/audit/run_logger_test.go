package audit_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/audit"
)

func TestRunID_IsValidAndStable(t *testing.T) {
	logger := audit.NewStructuredRunLogger(slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil)))

	id := logger.RunID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, logger.RunID())
}

func TestLogAssessment_EmitsStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := audit.NewStructuredRunLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	event := domain.EventRecord{
		"eventName":       "ConsoleLogin",
		"userIdentity":    map[string]any{"userName": "root"},
		"sourceIPAddress": "1.2.3.4",
	}
	assessment := domain.DefaultAssessment()
	assessment.Severity = domain.SeverityCritical

	logger.LogAssessment(context.Background(), 3, event, assessment, false)

	out := buf.String()
	assert.Contains(t, out, "assessment_recorded")
	assert.Contains(t, out, logger.RunID())
	assert.Contains(t, out, `"event_index":3`)
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "ConsoleLogin")
	assert.Contains(t, out, `"checksum"`)
}
