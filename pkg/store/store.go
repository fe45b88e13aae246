// Package store persists the knowledge base and chat transcripts. One Store
// interface is implemented by an in-memory backend and a gorm backend; the
// backend is picked once at startup.
package store

import (
	"context"
	"errors"

	"MITSAssistant/models"
)

var ErrNotFound = errors.New("record not found")

type Store interface {
	// GetContent returns the page stored for url or ErrNotFound.
	GetContent(ctx context.Context, url string) (*models.ScrapedContent, error)
	// ListContent returns every stored page ordered by URL.
	ListContent(ctx context.Context) ([]models.ScrapedContent, error)
	// UpsertContent creates the page or overwrites the row with the same URL.
	UpsertContent(ctx context.Context, in models.ContentInput) (*models.ScrapedContent, error)
	// UpdateContent overwrites an existing page; ErrNotFound if the URL is unknown.
	UpdateContent(ctx context.Context, in models.ContentInput) (*models.ScrapedContent, error)

	CreateSession(ctx context.Context) (*models.ConversationSession, error)
	GetSession(ctx context.Context, id string) (*models.ConversationSession, error)
	// EnsureSession returns the session with id, creating it if needed.
	EnsureSession(ctx context.Context, id string) (*models.ConversationSession, error)

	// AppendMessage persists msg, filling ID and Timestamp when empty.
	AppendMessage(ctx context.Context, msg *models.ChatMessage) error
	// SessionMessages returns the transcript of a session, oldest first.
	SessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)

	Close() error
}
