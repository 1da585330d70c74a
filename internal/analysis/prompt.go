package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
)

// SystemPrompt frames the model as a security analyst for every request.
const SystemPrompt = "You are a cloud security analyst. Analyze AWS CloudTrail events and identify security risks. Always respond in exactly the format requested."

const promptTemplate = `Analyze this AWS CloudTrail event and provide:

1. SEVERITY: (CRITICAL/HIGH/MEDIUM/LOW/INFO)
2. FINDING: One sentence describing what happened
3. RISK: Why this is or isn't a security concern
4. ACTION: Recommended response

Format your response EXACTLY like this with no extra text:
SEVERITY: [level]
FINDING: [one sentence]
RISK: [one sentence]
ACTION: [one sentence]

CloudTrail Event:
%s`

// BuildPrompt serializes the event canonically and wraps it in the fixed
// instruction template. encoding/json emits map keys in sorted order, so
// two records with identical content produce byte-identical prompts
// regardless of insertion order.
func BuildPrompt(event domain.EventRecord) (string, error) {
	payload, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}
	return fmt.Sprintf(promptTemplate, payload), nil
}
