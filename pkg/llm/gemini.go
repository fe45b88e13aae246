package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL    string
	HTTPClient *http.Client
}

// Gemini completes through the Google Gen AI SDK.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: cfg.Model}, nil
}

func (g *Gemini) Name() string { return "gemini:" + g.model }

func (g *Gemini) Complete(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.User), config)
	if err != nil {
		return "", classifyGemini(err)
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

func classifyGemini(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return geminiAPIError(apiErr, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return geminiAPIError(*apiErrPtr, err)
	}
	return upstream(err)
}

func geminiAPIError(apiErr genai.APIError, err error) error {
	if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
		return &Error{Kind: KindRateLimited, Retryable: true, StatusCode: http.StatusTooManyRequests, Err: err}
	}
	return statusError(apiErr.Code, err)
}
