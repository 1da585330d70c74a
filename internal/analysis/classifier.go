package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudsecure-ai/cloudsecure/internal/adapters/llm"
	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
	"github.com/cloudsecure-ai/cloudsecure/internal/infra/ratelimit"
	"github.com/cloudsecure-ai/cloudsecure/pkg/execution"
)

// Classifier submits one classification request to the LLM backend and
// returns its raw text. It owns backend pacing and the per-call timeout;
// it performs no retries and makes no assumptions about the reply format.
type Classifier struct {
	provider llm.LLMProvider
	limiter  ratelimit.Limiter
	timeout  time.Duration
}

func NewClassifier(provider llm.LLMProvider, limiter ratelimit.Limiter, timeout time.Duration) *Classifier {
	return &Classifier{
		provider: provider,
		limiter:  limiter,
		timeout:  timeout,
	}
}

// Classify sends the prompt and returns the backend's raw reply. Backend
// failures of any kind wrap ErrClassification so the orchestrator can
// recover per event; an empty reply is never returned as success.
func (c *Classifier) Classify(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", apperrors.ErrClassification, err)
	}

	resp, err := execution.WithTimeout(ctx, c.timeout, func(ctx context.Context) (*llm.LLMResponse, error) {
		return c.provider.Generate(ctx, &llm.LLMRequest{
			System: SystemPrompt,
			Prompt: prompt,
		})
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrClassification, err)
	}

	return resp.Content, nil
}
