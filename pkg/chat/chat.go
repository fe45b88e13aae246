// Package chat runs one question through the answer pipeline: session
// bookkeeping, retrieval over the stored pages, the LLM call and transcript
// persistence.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"MITSAssistant/models"
	"MITSAssistant/pkg/llm"
	"MITSAssistant/pkg/retrieval"
	"MITSAssistant/pkg/store"

	"go.uber.org/zap"
)

const (
	MaxMessageLen = 1000

	EmptyKnowledgeBaseMessage = "I don't have any information about MITS yet. The knowledge base needs to be populated first. Please contact the administrator to set up the content."
)

// ErrInvalidRequest marks input that was rejected before any work was done.
var ErrInvalidRequest = errors.New("invalid chat request")

type Request struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

type Response struct {
	Message   models.Message `json:"message"`
	SessionID string         `json:"sessionId"`
}

func (r Request) Validate() error {
	if r.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidRequest)
	}
	if utf8.RuneCountInString(r.Message) > MaxMessageLen {
		return fmt.Errorf("%w: message must be at most %d characters", ErrInvalidRequest, MaxMessageLen)
	}
	if utf8.RuneCountInString(r.SessionID) > models.MaxSessionIDLen {
		return fmt.Errorf("%w: sessionId must be at most %d characters", ErrInvalidRequest, models.MaxSessionIDLen)
	}
	return nil
}

type Service struct {
	store store.Store
	gen   llm.Generator
	log   *zap.Logger
	now   func() time.Time
}

func NewService(st store.Store, gen llm.Generator, log *zap.Logger) *Service {
	return &Service{
		store: st,
		gen:   gen,
		log:   log.Named("chat"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Handle answers req. The user message is stored before the model is asked,
// so a failed answer leaves the question in the transcript.
func (s *Service) Handle(ctx context.Context, req Request) (*Response, error) {
	return s.HandleNotify(ctx, req, nil)
}

// HandleNotify is Handle with a callback fired as soon as the session id is
// known, before the answer is generated.
func (s *Service) HandleNotify(ctx context.Context, req Request, onSession func(sessionID string)) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.session(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if onSession != nil {
		onSession(sess.ID)
	}

	userMsg := &models.ChatMessage{
		SessionID: sess.ID,
		Role:      models.RoleUser,
		Content:   req.Message,
		Timestamp: s.now(),
	}
	if err := s.store.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	pages, err := s.store.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		s.log.Info("knowledge base is empty", zap.String("session_id", sess.ID))
		return s.reply(ctx, sess.ID, userMsg.Timestamp, EmptyKnowledgeBaseMessage, nil)
	}

	ranked := retrieval.Rank(retrieval.PagesFrom(pages), req.Message)
	s.log.Debug("ranked content",
		zap.String("session_id", sess.ID),
		zap.Int("pages", len(pages)),
		zap.Int("relevant", len(ranked)))

	ans, err := s.gen.Generate(ctx, req.Message, retrieval.BuildContext(ranked))
	if err != nil {
		return nil, err
	}

	var sources []models.Source
	if ans.HasAnswer && len(ranked) > 0 {
		sources = retrieval.Sources(ranked)
	}
	return s.reply(ctx, sess.ID, userMsg.Timestamp, Format(ans), sources)
}

func (s *Service) session(ctx context.Context, id string) (*models.ConversationSession, error) {
	if id == "" {
		return s.store.CreateSession(ctx)
	}
	return s.store.EnsureSession(ctx, id)
}

func (s *Service) reply(ctx context.Context, sessionID string, after time.Time, content string, sources []models.Source) (*Response, error) {
	ts := s.now()
	if !ts.After(after) {
		ts = after.Add(time.Millisecond)
	}
	msg := &models.ChatMessage{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   content,
		Sources:   sources,
		Timestamp: ts,
	}
	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	return &Response{Message: msg.View(), SessionID: sessionID}, nil
}

// Format renders an answer as the summary followed by a numbered list.
func Format(ans llm.Answer) string {
	var b strings.Builder
	b.WriteString(ans.Summary)
	if len(ans.Bullets) > 0 {
		b.WriteString("\n\n")
		for i, bullet := range ans.Bullets {
			fmt.Fprintf(&b, "%d. %s\n", i+1, bullet)
		}
	}
	return strings.TrimSpace(b.String())
}
