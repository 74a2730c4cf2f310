package ports

import "context"

// ChatMessage is one entry in the message list sent to a chat model backend.
// Name is only populated for function-role entries.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// ChatClient is the outbound port to a chat-completion model backend.
// A nil ChatClient means no backend is configured; callers must degrade to
// their deterministic fallback in that case. Implementations perform no
// retries: a failed call is reported once and never repeated.
type ChatClient interface {
	// Complete sends the ordered message list at the given sampling temperature
	// and returns the model's raw text reply.
	Complete(ctx context.Context, messages []ChatMessage, temperature float64) (string, error)
}
