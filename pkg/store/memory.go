package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"MITSAssistant/models"

	"github.com/google/uuid"
)

// Memory keeps everything in process memory. Used for development and tests.
type Memory struct {
	mu       sync.RWMutex
	content  map[string]models.ScrapedContent // by URL
	sessions map[string]models.ConversationSession
	messages map[string][]models.ChatMessage // by session, append order
	now      func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		content:  make(map[string]models.ScrapedContent),
		sessions: make(map[string]models.ConversationSession),
		messages: make(map[string][]models.ChatMessage),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *Memory) GetContent(_ context.Context, url string) (*models.ScrapedContent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.content[url]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) ListContent(_ context.Context) ([]models.ScrapedContent, error) {
	m.mu.RLock()
	out := make([]models.ScrapedContent, 0, len(m.content))
	for _, c := range m.content {
		out = append(out, c)
	}
	m.mu.RUnlock()
	slices.SortFunc(out, func(a, b models.ScrapedContent) int { return strings.Compare(a.URL, b.URL) })
	return out, nil
}

func (m *Memory) UpsertContent(_ context.Context, in models.ContentInput) (*models.ScrapedContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.content[in.URL]
	if !ok {
		c.ID = uuid.NewString()
	}
	c.URL, c.Title, c.Content = in.URL, in.Title, in.Content
	c.ScrapedAt = m.now()
	m.content[in.URL] = c
	return &c, nil
}

func (m *Memory) UpdateContent(_ context.Context, in models.ContentInput) (*models.ScrapedContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.content[in.URL]
	if !ok {
		return nil, ErrNotFound
	}
	c.Title, c.Content = in.Title, in.Content
	c.ScrapedAt = m.now()
	m.content[in.URL] = c
	return &c, nil
}

func (m *Memory) CreateSession(ctx context.Context) (*models.ConversationSession, error) {
	return m.EnsureSession(ctx, uuid.NewString())
}

func (m *Memory) GetSession(_ context.Context, id string) (*models.ConversationSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *Memory) EnsureSession(_ context.Context, id string) (*models.ConversationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		now := m.now()
		s = models.ConversationSession{ID: id, CreatedAt: now, UpdatedAt: now}
		m.sessions[id] = s
	}
	return &s, nil
}

func (m *Memory) AppendMessage(_ context.Context, msg *models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[msg.SessionID]
	if !ok {
		return ErrNotFound
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = m.now()
	}
	m.messages[msg.SessionID] = append(m.messages[msg.SessionID], *msg)
	s.UpdatedAt = m.now()
	m.sessions[msg.SessionID] = s
	return nil
}

func (m *Memory) SessionMessages(_ context.Context, sessionID string) ([]models.ChatMessage, error) {
	m.mu.RLock()
	out := slices.Clone(m.messages[sessionID])
	m.mu.RUnlock()
	slices.SortStableFunc(out, func(a, b models.ChatMessage) int { return a.Timestamp.Compare(b.Timestamp) })
	if out == nil {
		out = []models.ChatMessage{}
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
