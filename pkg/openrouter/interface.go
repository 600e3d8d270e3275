package openrouter

import "context"

// IOpenRouter is a chat-completion client.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	// ChatCompletion sends one chat-completion request.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenRouter client with the given configuration
func New(cfg Config) (IOpenRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenRouterImpl(cfg), nil
}
