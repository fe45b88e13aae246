// Package llm turns a question plus retrieved context into a structured
// answer. Completion backends only move text; prompt construction, output
// validation and retry policy live here so every backend behaves the same.
package llm

import "context"

// Answer is the structured reply the model is instructed to produce.
type Answer struct {
	Summary   string   `json:"summary"`
	Bullets   []string `json:"bullets"`
	HasAnswer bool     `json:"hasAnswer"`
}

// Request is one completion call.
type Request struct {
	System    string
	User      string
	MaxTokens int
}

// Completer performs a single completion in JSON output mode and returns the
// raw message text. Failures must be reported as *Error so the caller can
// tell rate limits from everything else.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Generator is what the chat pipeline depends on.
type Generator interface {
	Generate(ctx context.Context, userMessage, contextText string) (Answer, error)
}

type disabled struct {
	err error
}

// Disabled is a Completer that always fails with err. It stands in when no
// provider credentials are configured so the rest of the service can run.
func Disabled(err error) Completer {
	return disabled{err: err}
}

func (d disabled) Name() string { return "disabled" }

func (d disabled) Complete(context.Context, Request) (string, error) {
	return "", upstream(d.err)
}
