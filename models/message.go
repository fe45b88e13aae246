package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Source is a cited page attached to an assistant answer.
type Source struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// ChatMessage is a persisted transcript line. Messages are append-only and
// read back ordered by Timestamp within a session.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:36"`
	SessionID string    `gorm:"index;size:64;not null"`
	Role      string    `gorm:"size:20;not null"` // "user" or "assistant"
	Content   string    `gorm:"type:text;not null"`
	Sources   []Source  `gorm:"serializer:json"`
	Timestamp time.Time `gorm:"index;not null"`
}

// Message is the API view of a ChatMessage.
type Message struct {
	ID        string    `json:"id" yaml:"id"`
	Role      string    `json:"role" yaml:"role"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Sources   []Source  `json:"sources,omitempty" yaml:"sources,omitempty"`
}

func (m ChatMessage) View() Message {
	return Message{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Sources:   m.Sources,
	}
}
