package models

import "time"

// MaxSessionIDLen bounds client-supplied session ids.
const MaxSessionIDLen = 64

type ConversationSession struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
