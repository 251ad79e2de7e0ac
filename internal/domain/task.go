// File: internal/domain/task.go
package domain

import "time"

type Task struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	IsCompleted bool      `json:"isCompleted" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}
