// Package seed holds the starter knowledge base and the opening questions
// shown to a user who has not asked anything yet.
package seed

import (
	"context"
	"fmt"

	"MITSAssistant/pkg/store"

	"go.uber.org/zap"
)

// Suggestions are the starter questions offered on an empty chat.
var Suggestions = []string{
	"What are the admission requirements for B.Tech at MITS?",
	"What courses and programs are offered at MITS?",
	"What are the important academic dates and upcoming events at MITS?",
	"What is the contact information for MITS Gwalior?",
}

// Run loads Pages into st when it holds no content yet and reports how many
// pages were written. A populated store is left untouched.
func Run(ctx context.Context, st store.Store, log *zap.Logger) (int, error) {
	log = log.Named("seed")

	existing, err := st.ListContent(ctx)
	if err != nil {
		return 0, fmt.Errorf("check existing content: %w", err)
	}
	if len(existing) > 0 {
		log.Info("content already seeded, skipping", zap.Int("pages", len(existing)))
		return 0, nil
	}

	log.Info("seeding initial MITS content")
	for i, p := range Pages {
		if _, err := st.UpsertContent(ctx, p); err != nil {
			return i, fmt.Errorf("seed %s: %w", p.URL, err)
		}
		log.Debug("seeded", zap.String("title", p.Title))
	}
	log.Info("initial content seeded", zap.Int("pages", len(Pages)))
	return len(Pages), nil
}
