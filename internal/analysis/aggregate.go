package analysis

import "github.com/cloudsecure-ai/cloudsecure/internal/domain"

// Aggregate folds assessments into per-severity counts. All five buckets
// are present in the result, and the counts sum to len(assessments). The
// fold is commutative: any ordering of the same assessments produces the
// same counts.
func Aggregate(assessments []domain.Assessment) domain.SeverityCounts {
	counts := make(domain.SeverityCounts, len(domain.Severities))
	for _, sev := range domain.Severities {
		counts[sev] = 0
	}
	for _, a := range assessments {
		counts[a.Severity]++
	}
	return counts
}
