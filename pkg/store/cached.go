package store

import (
	"context"
	"encoding/json"
	"time"

	"MITSAssistant/models"
	"MITSAssistant/pkg/cache"

	"go.uber.org/zap"
)

const contentListKey = "content:all"

// Cached serves ListContent from a cache. Every content write through this
// store invalidates the cached list. Cache failures fall back to the inner
// store.
type Cached struct {
	Store
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewCached(inner Store, c cache.Cache, ttl time.Duration, log *zap.Logger) *Cached {
	return &Cached{Store: inner, cache: c, ttl: ttl, log: log.Named("store")}
}

func (s *Cached) ListContent(ctx context.Context) ([]models.ScrapedContent, error) {
	raw, ok, err := s.cache.Get(ctx, contentListKey)
	if err != nil {
		s.log.Warn("content cache read failed", zap.Error(err))
	}
	if ok {
		var out []models.ScrapedContent
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		s.log.Warn("discarding undecodable cached content list")
	}

	out, err := s.Store.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, contentListKey, raw, s.ttl); err != nil {
			s.log.Warn("content cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (s *Cached) UpsertContent(ctx context.Context, in models.ContentInput) (*models.ScrapedContent, error) {
	defer s.invalidate(ctx)
	return s.Store.UpsertContent(ctx, in)
}

func (s *Cached) UpdateContent(ctx context.Context, in models.ContentInput) (*models.ScrapedContent, error) {
	defer s.invalidate(ctx)
	return s.Store.UpdateContent(ctx, in)
}

func (s *Cached) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, contentListKey); err != nil {
		s.log.Warn("content cache invalidation failed", zap.Error(err))
	}
}

func (s *Cached) Close() error {
	cerr := s.cache.Close()
	if err := s.Store.Close(); err != nil {
		return err
	}
	return cerr
}
