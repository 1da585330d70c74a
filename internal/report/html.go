package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
)

// severityColors is the static severity palette. Unknown severities get
// the neutral gray, though upstream guarantees the five known values.
var severityColors = map[domain.Severity]string{
	domain.SeverityCritical: "#dc3545",
	domain.SeverityHigh:     "#fd7e14",
	domain.SeverityMedium:   "#ffc107",
	domain.SeverityLow:      "#17a2b8",
	domain.SeverityInfo:     "#28a745",
}

const neutralColor = "#6c757d"

// SeverityColor returns the display color for a severity.
func SeverityColor(sev domain.Severity) string {
	if color, ok := severityColors[sev]; ok {
		return color
	}
	return neutralColor
}

// HTMLRenderer renders a Report as a single self-contained HTML document.
// Rendering is a pure function of the Report; the embedded timestamp comes
// from the Report itself, so identical reports render identically.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

type summaryView struct {
	Label string
	Class string
	Count int
}

type eventView struct {
	Name     string
	User     string
	Time     string
	SourceIP string
	Severity string
	Class    string
	Finding  string
	Risk     string
	Action   string
}

type reportView struct {
	RunID       string
	GeneratedAt string
	TotalEvents int
	Summary     []summaryView
	Events      []eventView
}

// Render produces the report document bytes.
func (r *HTMLRenderer) Render(report *domain.Report) ([]byte, error) {
	view := reportView{
		RunID:       report.RunID,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02 15:04:05"),
		TotalEvents: len(report.Events),
	}

	for _, sev := range domain.Severities {
		view.Summary = append(view.Summary, summaryView{
			Label: string(sev),
			Class: severityClass(sev),
			Count: report.Counts[sev],
		})
	}

	for i, event := range report.Events {
		assessment := report.Assessments[i]
		view.Events = append(view.Events, eventView{
			Name:     event.EventName(),
			User:     event.UserName(),
			Time:     event.EventTime(),
			SourceIP: event.SourceIP(),
			Severity: string(assessment.Severity),
			Class:    severityClass(assessment.Severity),
			Finding:  assessment.Finding,
			Risk:     assessment.Risk,
			Action:   assessment.Action,
		})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the report to path, creating intermediate directories.
func (r *HTMLRenderer) WriteFile(path string, report *domain.Report) error {
	data, err := r.Render(report)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrReportWrite, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrReportWrite, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrReportWrite, err)
	}
	return nil
}

func severityClass(sev domain.Severity) string {
	if sev.Valid() {
		return "sev-" + strings.ToLower(string(sev))
	}
	return "sev-unknown"
}
