package analysis

import (
	"strings"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
)

// ParseAssessment turns raw model output into a structured Assessment. It
// is total: any input, however malformed, yields a valid assessment with
// every field populated, falling back to the defaults per field.
//
// Rules: lines are matched case-insensitively on the four field prefixes;
// a repeated prefix overwrites the earlier value (models sometimes restate
// a field); the severity value is whichever vocabulary word appears first
// in priority order as a substring of the uppercased remainder, which
// tolerates commentary like "SEVERITY: definitely HIGH"; unmatched lines
// are ignored.
func ParseAssessment(text string) domain.Assessment {
	result := domain.DefaultAssessment()

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)

		switch {
		case hasPrefixFold(line, "SEVERITY:"):
			remainder := strings.ToUpper(strings.TrimSpace(line[len("SEVERITY:"):]))
			for _, sev := range domain.Severities {
				if strings.Contains(remainder, string(sev)) {
					result.Severity = sev
					break
				}
			}
		case hasPrefixFold(line, "FINDING:"):
			if v := strings.TrimSpace(line[len("FINDING:"):]); v != "" {
				result.Finding = v
			}
		case hasPrefixFold(line, "RISK:"):
			if v := strings.TrimSpace(line[len("RISK:"):]); v != "" {
				result.Risk = v
			}
		case hasPrefixFold(line, "ACTION:"):
			if v := strings.TrimSpace(line[len("ACTION:"):]); v != "" {
				result.Action = v
			}
		}
	}

	return result
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
