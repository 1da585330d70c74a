package llm

// LLMRequest is a single generation request.
type LLMRequest struct {
	System string // System prompt (empty = provider default)
	Prompt string // User prompt

	Model       string  // Optional override of the default model
	Temperature float64 // Optional override of the default temperature
	MaxTokens   int     // Optional override of the default max tokens
}

// Message represents a single turn in a conversation.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// LLMResponse represents a result from an LLM.
type LLMResponse struct {
	Content string // Main output
	Usage   Usage  // Token usage metadata
}

// Usage captures token/resource usage info.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
