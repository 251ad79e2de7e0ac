package dtos

// ChatRequestDTO is the body of POST /api/chat. userMessage is accepted as an
// alias for message.
type ChatRequestDTO struct {
	ConversationID uint   `json:"conversationId"`
	Message        string `json:"message"`
	UserMessage    string `json:"userMessage"`
}

// Text returns whichever message field was sent, preferring userMessage.
func (r ChatRequestDTO) Text() string {
	if r.UserMessage != "" {
		return r.UserMessage
	}
	return r.Message
}

type ConversationCreateRequestDTO struct {
	Summary string `json:"summary"`
}

// ClientLogDTO is a log line forwarded by the front end.
type ClientLogDTO struct {
	Level   string                 `json:"level" validate:"omitempty,oneof=debug info warn error"`
	Message string                 `json:"message" validate:"required,max=2000"`
	Context map[string]interface{} `json:"context"`
}
