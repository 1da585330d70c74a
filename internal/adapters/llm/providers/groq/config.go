package groq

// GroqConfig configures the Groq chat-completions client. Groq speaks the
// OpenAI-compatible API, so BaseURL can point at any compatible backend.
type GroqConfig struct {
	APIKey      string  `json:"api_key" yaml:"api_key" validate:"required"`
	BaseURL     string  `json:"base_url" yaml:"base_url"` // Optional, defaults to the Groq API base URL
	Model       string  `json:"model" yaml:"model" validate:"required"`
	Temperature float64 `json:"temperature" yaml:"temperature"` // Default temperature for generation
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`   // Default max tokens for generation
	TimeoutSec  int     `json:"timeout_sec" yaml:"timeout_sec"` // Request timeout in seconds
}

const defaultBaseURL = "https://api.groq.com/openai/v1"
