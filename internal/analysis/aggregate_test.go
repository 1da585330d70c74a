package analysis_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsecure-ai/cloudsecure/internal/analysis"
	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
)

func assessmentsWithSeverities(sevs ...domain.Severity) []domain.Assessment {
	out := make([]domain.Assessment, len(sevs))
	for i, sev := range sevs {
		a := domain.DefaultAssessment()
		a.Severity = sev
		out[i] = a
	}
	return out
}

func TestAggregate_Empty(t *testing.T) {
	counts := analysis.Aggregate(nil)

	require.Len(t, counts, 5)
	for _, sev := range domain.Severities {
		assert.Equal(t, 0, counts[sev])
	}
	assert.Equal(t, 0, counts.Total())
}

func TestAggregate_Counts(t *testing.T) {
	assessments := assessmentsWithSeverities(
		domain.SeverityCritical,
		domain.SeverityHigh,
		domain.SeverityHigh,
		domain.SeverityInfo,
		domain.SeverityLow,
	)

	counts := analysis.Aggregate(assessments)

	assert.Equal(t, 1, counts[domain.SeverityCritical])
	assert.Equal(t, 2, counts[domain.SeverityHigh])
	assert.Equal(t, 0, counts[domain.SeverityMedium])
	assert.Equal(t, 1, counts[domain.SeverityLow])
	assert.Equal(t, 1, counts[domain.SeverityInfo])
	assert.Equal(t, len(assessments), counts.Total())
}

// Aggregation is order-independent: any permutation of the same
// assessments yields identical counts.
func TestAggregate_PermutationInvariant(t *testing.T) {
	assessments := assessmentsWithSeverities(
		domain.SeverityCritical, domain.SeverityCritical,
		domain.SeverityHigh, domain.SeverityMedium,
		domain.SeverityLow, domain.SeverityLow,
		domain.SeverityInfo, domain.SeverityInfo, domain.SeverityInfo,
	)
	want := analysis.Aggregate(assessments)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Assessment, len(assessments))
		copy(shuffled, assessments)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := analysis.Aggregate(shuffled)
		assert.Equal(t, want, got)
		assert.Equal(t, len(assessments), got.Total())
	}
}
