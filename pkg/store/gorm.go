package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"MITSAssistant/models"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBConfig struct {
	Driver  string // sqlite | postgres | mysql
	DSN     string
	MaxOpen int
	MaxIdle int
	MaxLife time.Duration
}

// Gorm is the relational backend. Every write is a single statement or a
// short transaction.
type Gorm struct {
	db  *gorm.DB
	now func() time.Time
}

func dialector(cfg DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenGorm connects, tunes the pool and migrates the schema.
func OpenGorm(cfg DBConfig) (*Gorm, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying database connection: %w", err)
	}
	if cfg.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	}
	if cfg.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	}
	if cfg.MaxLife > 0 {
		sqlDB.SetConnMaxLifetime(cfg.MaxLife)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return NewGorm(db)
}

// NewGorm wraps an open connection and migrates the schema.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.ScrapedContent{}, &models.ConversationSession{}, &models.ChatMessage{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Gorm{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (g *Gorm) GetContent(ctx context.Context, url string) (*models.ScrapedContent, error) {
	var c models.ScrapedContent
	if err := g.db.WithContext(ctx).Where("url = ?", url).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (g *Gorm) ListContent(ctx context.Context) ([]models.ScrapedContent, error) {
	var out []models.ScrapedContent
	if err := g.db.WithContext(ctx).Order("url asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return out, nil
}

func (g *Gorm) UpsertContent(ctx context.Context, in models.ContentInput) (*models.ScrapedContent, error) {
	var out models.ScrapedContent
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("url = ?", in.URL).First(&out).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			out = models.ScrapedContent{
				ID:        uuid.NewString(),
				URL:       in.URL,
				Title:     in.Title,
				Content:   in.Content,
				ScrapedAt: g.now(),
			}
			return tx.Create(&out).Error
		case err != nil:
			return err
		}
		out.Title, out.Content, out.ScrapedAt = in.Title, in.Content, g.now()
		return tx.Save(&out).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert content: %w", err)
	}
	return &out, nil
}

func (g *Gorm) UpdateContent(ctx context.Context, in models.ContentInput) (*models.ScrapedContent, error) {
	var out models.ScrapedContent
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("url = ?", in.URL).First(&out).Error; err != nil {
			return notFound(err)
		}
		out.Title, out.Content, out.ScrapedAt = in.Title, in.Content, g.now()
		return tx.Save(&out).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	return &out, nil
}

func (g *Gorm) CreateSession(ctx context.Context) (*models.ConversationSession, error) {
	s := models.ConversationSession{ID: uuid.NewString()}
	if err := g.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &s, nil
}

func (g *Gorm) GetSession(ctx context.Context, id string) (*models.ConversationSession, error) {
	var s models.ConversationSession
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (g *Gorm) EnsureSession(ctx context.Context, id string) (*models.ConversationSession, error) {
	var s models.ConversationSession
	if err := g.db.WithContext(ctx).Where(models.ConversationSession{ID: id}).FirstOrCreate(&s).Error; err != nil {
		return nil, fmt.Errorf("failed to ensure session: %w", err)
	}
	return &s, nil
}

func (g *Gorm) AppendMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = g.now()
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.ConversationSession{}).Where("id = ?", msg.SessionID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.ConversationSession{}).Where("id = ?", msg.SessionID).Update("updated_at", g.now()).Error
	})
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (g *Gorm) SessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	out := []models.ChatMessage{}
	if err := g.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("timestamp asc").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return out, nil
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
