package chat

// Logger defines the logging interface used across chat services
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Conversation origins, used as a metrics label.
const (
	OriginWeb      = "web"
	OriginTelegram = "telegram"
	OriginWhatsApp = "whatsapp"
)

// Reply is the outcome of one pass through the pipeline.
type Reply struct {
	ConversationID uint
	Text           string
	// Fallback is set when the provider returned nothing and the placeholder was stored instead.
	Fallback bool
}
