// File: internal/domain/conversation.go
package domain

import "time"

// Conversation is a named thread of chat messages owned by one user.
type Conversation struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	UserID    uint          `json:"userId" gorm:"not null;index"`
	Summary   string        `json:"summary" gorm:"size:200"` // first words of the opening message
	CreatedAt time.Time     `json:"createdAt" gorm:"index"`
	Messages  []ChatMessage `json:"messages,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
