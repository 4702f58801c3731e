package llm

import "context"

// ChatMessage is one turn of the completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer issues exactly one chat-completion call and returns the raw
// completion text. Implementations are stateless per call and safe to share
// across concurrent requests.
type Completer interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
