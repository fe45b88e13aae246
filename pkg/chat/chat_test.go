package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"MITSAssistant/models"
	"MITSAssistant/pkg/llm"
	"MITSAssistant/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGen struct {
	ans      llm.Answer
	err      error
	calls    int
	question string
	context  string
}

func (f *fakeGen) Generate(_ context.Context, userMessage, contextText string) (llm.Answer, error) {
	f.calls++
	f.question, f.context = userMessage, contextText
	return f.ans, f.err
}

func seeded(t *testing.T) store.Store {
	t.Helper()
	st := store.NewMemory()
	for _, in := range []models.ContentInput{
		{URL: "https://www.mitsgwalior.ac.in/admissions", Title: "Admissions - MITS Gwalior", Content: "B.Tech admission requires a valid JEE Main score."},
		{URL: "https://www.mitsgwalior.ac.in/facilities", Title: "Campus Facilities", Content: "Library, hostels and sports grounds."},
	} {
		_, err := st.UpsertContent(context.Background(), in)
		require.NoError(t, err)
	}
	return st
}

func TestHandleEmptyKnowledgeBase(t *testing.T) {
	st := store.NewMemory()
	gen := &fakeGen{}
	svc := NewService(st, gen, zap.NewNop())

	resp, err := svc.Handle(context.Background(), Request{Message: "What are the admission requirements?"})
	require.NoError(t, err)

	assert.Zero(t, gen.calls)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, models.RoleAssistant, resp.Message.Role)
	assert.Equal(t, EmptyKnowledgeBaseMessage, resp.Message.Content)
	assert.Empty(t, resp.Message.Sources)

	msgs, err := st.SessionMessages(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
	assert.Equal(t, EmptyKnowledgeBaseMessage, msgs[1].Content)
}

func TestHandleAnswerWithSources(t *testing.T) {
	st := seeded(t)
	gen := &fakeGen{ans: llm.Answer{
		Summary:   "B.Tech admission needs a JEE Main score.",
		Bullets:   []string{"Valid JEE Main score", "MP DTE counseling"},
		HasAnswer: true,
	}}
	svc := NewService(st, gen, zap.NewNop())

	resp, err := svc.Handle(context.Background(), Request{Message: "What are the admission requirements?"})
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.True(t, strings.HasPrefix(gen.context, "[Source 1: Admissions - MITS Gwalior - https://www.mitsgwalior.ac.in/admissions]"))
	assert.Equal(t, "B.Tech admission needs a JEE Main score.\n\n1. Valid JEE Main score\n2. MP DTE counseling", resp.Message.Content)
	assert.Equal(t, []models.Source{{Title: "Admissions - MITS Gwalior", URL: "https://www.mitsgwalior.ac.in/admissions"}}, resp.Message.Sources)

	msgs, err := st.SessionMessages(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, resp.Message.Sources, msgs[1].Sources)
	assert.True(t, msgs[1].Timestamp.After(msgs[0].Timestamp))
}

func TestHandleNoAnswerNeverCarriesSources(t *testing.T) {
	gen := &fakeGen{ans: llm.Answer{Summary: "I don't have this information.", Bullets: []string{}}}
	svc := NewService(seeded(t), gen, zap.NewNop())

	resp, err := svc.Handle(context.Background(), Request{Message: "admission deadline?"})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "I don't have this information.", resp.Message.Content)
	assert.Nil(t, resp.Message.Sources)
}

func TestHandleNoRelevantPagesStillAsks(t *testing.T) {
	gen := &fakeGen{ans: llm.Answer{Summary: "No idea.", HasAnswer: true}}
	svc := NewService(seeded(t), gen, zap.NewNop())

	resp, err := svc.Handle(context.Background(), Request{Message: "zzz qqq"})
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
	assert.Empty(t, gen.context)
	assert.Nil(t, resp.Message.Sources)
}

func TestHandleReusesSession(t *testing.T) {
	st := seeded(t)
	svc := NewService(st, &fakeGen{ans: llm.Answer{Summary: "ok"}}, zap.NewNop())

	var notified string
	first, err := svc.HandleNotify(context.Background(), Request{Message: "hostels?", SessionID: "client-session-1"}, func(id string) { notified = id })
	require.NoError(t, err)
	assert.Equal(t, "client-session-1", first.SessionID)
	assert.Equal(t, "client-session-1", notified)

	_, err = svc.Handle(context.Background(), Request{Message: "library?", SessionID: first.SessionID})
	require.NoError(t, err)

	msgs, err := st.SessionMessages(context.Background(), first.SessionID)
	require.NoError(t, err)
	assert.Len(t, msgs, 4)
}

func TestHandleLLMFailureKeepsUserMessage(t *testing.T) {
	st := seeded(t)
	boom := &llm.Error{Kind: llm.KindUpstream, StatusCode: 500, Err: errors.New("boom")}
	svc := NewService(st, &fakeGen{err: boom}, zap.NewNop())

	_, err := svc.Handle(context.Background(), Request{Message: "admission?", SessionID: "s1"})
	require.ErrorIs(t, err, boom)

	msgs, err := st.SessionMessages(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleUser, msgs[0].Role)
}

func TestValidate(t *testing.T) {
	ok := []Request{
		{Message: "a"},
		{Message: "   "},
		{Message: strings.Repeat("x", MaxMessageLen)},
		{Message: strings.Repeat("é", MaxMessageLen)},
	}
	for _, r := range ok {
		assert.NoError(t, r.Validate())
	}

	bad := []Request{
		{Message: ""},
		{Message: strings.Repeat("x", MaxMessageLen+1)},
		{Message: "hi", SessionID: strings.Repeat("s", models.MaxSessionIDLen+1)},
	}
	for _, r := range bad {
		assert.ErrorIs(t, r.Validate(), ErrInvalidRequest)
	}

	gen := &fakeGen{}
	st := store.NewMemory()
	_, err := NewService(st, gen, zap.NewNop()).Handle(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, gen.calls)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Only a summary.", Format(llm.Answer{Summary: "Only a summary."}))
	assert.Equal(t, "S\n\n1. a\n2. b", Format(llm.Answer{Summary: "S", Bullets: []string{"a", "b"}}))
}
