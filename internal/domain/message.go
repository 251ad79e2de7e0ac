// File: internal/domain/message.go
package domain

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage is one append-only entry in a conversation.
type ChatMessage struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	ConversationID uint      `json:"conversationId" gorm:"not null;index"`
	Sender         string    `json:"sender" gorm:"not null;size:20"` // "user" or "assistant"
	Text           string    `json:"text" gorm:"not null"`
	CreatedAt      time.Time `json:"createdAt" gorm:"index"`
}

// IsFromUser reports whether the message was written by the human side.
func (m *ChatMessage) IsFromUser() bool {
	return m.Sender == SenderUser
}
