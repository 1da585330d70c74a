package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	"github.com/cloudsecure-ai/cloudsecure/internal/report"
)

func sampleReport(t *testing.T) *domain.Report {
	t.Helper()
	events := []domain.EventRecord{{
		"eventName":       "ConsoleLogin",
		"eventTime":       "2025-01-15T10:30:00Z",
		"userIdentity":    map[string]any{"userName": "root"},
		"sourceIPAddress": "1.2.3.4",
	}}
	assessments := []domain.Assessment{{
		Severity: domain.SeverityCritical,
		Finding:  "Root login detected",
		Risk:     "Root account should not be used directly",
		Action:   "Rotate credentials and enable MFA",
	}}
	counts := domain.SeverityCounts{
		domain.SeverityCritical: 1,
		domain.SeverityHigh:     0,
		domain.SeverityMedium:   0,
		domain.SeverityLow:      0,
		domain.SeverityInfo:     0,
	}

	rep, err := domain.NewReport("run-1", time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), events, assessments, counts)
	require.NoError(t, err)
	return rep
}

func TestRender_ContainsEventAndAssessment(t *testing.T) {
	renderer, err := report.NewHTMLRenderer()
	require.NoError(t, err)

	out, err := renderer.Render(sampleReport(t))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "ConsoleLogin")
	assert.Contains(t, html, "root")
	assert.Contains(t, html, "1.2.3.4")
	assert.Contains(t, html, "CRITICAL")
	assert.Contains(t, html, "Root login detected")
	assert.Contains(t, html, "Rotate credentials and enable MFA")
	assert.Contains(t, html, "2025-01-15 12:00:00")
	assert.Contains(t, html, "Total Events Analyzed: 1")
}

// Identical reports must render identically; the timestamp is part of the
// Report, not ambient state.
func TestRender_Reproducible(t *testing.T) {
	renderer, err := report.NewHTMLRenderer()
	require.NoError(t, err)
	rep := sampleReport(t)

	first, err := renderer.Render(rep)
	require.NoError(t, err)
	second, err := renderer.Render(rep)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Model output is untrusted free text; it must be escaped in the document.
func TestRender_EscapesModelOutput(t *testing.T) {
	renderer, err := report.NewHTMLRenderer()
	require.NoError(t, err)

	rep := sampleReport(t)
	rep.Assessments[0].Finding = `<script>alert("x")</script>`

	out, err := renderer.Render(rep)
	require.NoError(t, err)

	assert.NotContains(t, string(out), `<script>alert`)
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestRender_EmptyReport(t *testing.T) {
	renderer, err := report.NewHTMLRenderer()
	require.NoError(t, err)

	counts := domain.SeverityCounts{}
	for _, sev := range domain.Severities {
		counts[sev] = 0
	}
	rep, err := domain.NewReport("run-2", time.Now(), nil, nil, counts)
	require.NoError(t, err)

	out, err := renderer.Render(rep)
	require.NoError(t, err)
	assert.Contains(t, string(out), "No events were analyzed.")
}

func TestWriteFile_CreatesDirectories(t *testing.T) {
	renderer, err := report.NewHTMLRenderer()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reports", "nested", "security_report.html")
	require.NoError(t, renderer.WriteFile(path, sampleReport(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestSeverityColor(t *testing.T) {
	assert.Equal(t, "#dc3545", report.SeverityColor(domain.SeverityCritical))
	assert.Equal(t, "#28a745", report.SeverityColor(domain.SeverityInfo))
	assert.Equal(t, "#6c757d", report.SeverityColor(domain.Severity("BOGUS")))
}
