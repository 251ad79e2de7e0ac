package messaging

import "context"

// Relay delivers an assistant reply back to the external chat it came from.
type Relay interface {
	Send(ctx context.Context, to, text string) error
	Name() string
}
