package openrouter

import "time"

const (
	// DefaultBaseURL is the OpenRouter OpenAI-compatible API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "deepseek/deepseek-r1:free"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
