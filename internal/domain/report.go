package domain

import (
	"fmt"
	"time"
)

// Assessment is the structured verdict for one event. Zero values are not
// valid; use DefaultAssessment for the sentinel.
type Assessment struct {
	Severity Severity
	Finding  string
	Risk     string
	Action   string
}

// DefaultAssessment returns the all-defaults verdict. It is both the
// parser's starting point and the sentinel recorded when classification
// fails for an event.
func DefaultAssessment() Assessment {
	return Assessment{
		Severity: SeverityInfo,
		Finding:  "Event analyzed",
		Risk:     "Review recommended",
		Action:   "Monitor activity",
	}
}

// SeverityCounts maps each severity to the number of assessments carrying
// it. All five buckets are always present.
type SeverityCounts map[Severity]int

// Total returns the sum across all buckets.
func (c SeverityCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Report is the immutable output of one pipeline run: the ingested events,
// the index-aligned assessments, and the aggregate counts.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Events      []EventRecord
	Assessments []Assessment
	Counts      SeverityCounts
}

// NewReport builds a Report, enforcing that assessments align one-to-one
// with events.
func NewReport(runID string, generatedAt time.Time, events []EventRecord, assessments []Assessment, counts SeverityCounts) (*Report, error) {
	if len(events) != len(assessments) {
		return nil, fmt.Errorf("report misaligned: %d events, %d assessments", len(events), len(assessments))
	}
	return &Report{
		RunID:       runID,
		GeneratedAt: generatedAt,
		Events:      events,
		Assessments: assessments,
		Counts:      counts,
	}, nil
}
