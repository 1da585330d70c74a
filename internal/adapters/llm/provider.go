package llm

import "context"

// LLMProvider is the seam between the pipeline and a language-model
// backend. Implementations own transport, auth, and timeouts.
type LLMProvider interface {
	Generate(ctx context.Context, req *LLMRequest) (*LLMResponse, error)
}
