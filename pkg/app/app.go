// Package app wires every long-lived collaborator from configuration. Both
// the HTTP server and the admin CLI build one App at startup and close it on
// the way out.
package app

import (
	"context"
	"errors"
	"fmt"

	"MITSAssistant/pkg/cache"
	"MITSAssistant/pkg/chat"
	"MITSAssistant/pkg/config"
	"MITSAssistant/pkg/llm"
	"MITSAssistant/pkg/scraper"
	"MITSAssistant/pkg/store"

	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Log     *zap.Logger
	Store   store.Store
	Scraper *scraper.Scraper
	LLM     llm.Generator
	Chat    *chat.Service
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		log.Warn("LLM backend unavailable, chat answers will fail", zap.String("provider", cfg.LLMProvider), zap.Error(err))
		completer = llm.Disabled(err)
	}
	gen := llm.NewClient(completer, llm.WithMaxTokens(cfg.LLMMaxTokens), llm.WithLogger(log))

	if cfg.UsingDefaultAdminKey() {
		log.Warn("using the default development admin key; set ADMIN_KEY before exposing this server")
	}

	return &App{
		Config:  cfg,
		Log:     log,
		Store:   st,
		Scraper: scraper.New(cfg.ScrapeTimeout, log),
		LLM:     gen,
		Chat:    chat.NewService(st, gen, log),
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, error) {
	var st store.Store
	if cfg.StoreDriver == "memory" {
		st = store.NewMemory()
	} else {
		g, err := store.OpenGorm(store.DBConfig{
			Driver:  cfg.StoreDriver,
			DSN:     cfg.DatabaseURL,
			MaxOpen: cfg.DBMaxOpen,
			MaxIdle: cfg.DBMaxIdle,
			MaxLife: cfg.DBMaxLife,
		})
		if err != nil {
			return nil, err
		}
		st = g
	}
	log.Info("store ready", zap.String("driver", cfg.StoreDriver))

	var c cache.Cache
	switch cfg.CacheDriver {
	case "memory":
		if cfg.StoreDriver != "memory" {
			log.Warn("in-process content cache only sees writes made by this process; use redis when mitsctl or another server writes the same database")
		}
		c = cache.NewMemory(cfg.CacheMaxItems, cache.DefaultJanitorInterval)
	case "redis":
		r, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   "mits:",
		})
		if err != nil {
			_ = st.Close()
			return nil, err
		}
		c = r
	default:
		return st, nil
	}
	log.Info("content cache ready", zap.String("driver", cfg.CacheDriver), zap.Duration("ttl", cfg.CacheTTL))
	return store.NewCached(st, c, cfg.CacheTTL, log), nil
}

func newCompleter(ctx context.Context, cfg *config.Config) (llm.Completer, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return llm.NewGemini(ctx, llm.GeminiConfig{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
	case "openai":
		return llm.NewOpenAI(llm.OpenAIConfig{BaseURL: cfg.OpenAIBaseURL, APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel})
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

func (a *App) Close() error {
	var errs []error
	if err := a.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	_ = a.Log.Sync()
	return errors.Join(errs...)
}
