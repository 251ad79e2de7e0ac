package ai

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the prompt sent to the model.
type Message struct {
	Role    string
	Content string
}

// CompletionProvider turns an ordered prompt into a single reply. An empty
// reply is returned as "" with a nil error.
type CompletionProvider interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}
