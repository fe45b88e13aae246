package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAdminKey is the development fallback for ADMIN_KEY. It is public, so
// anything deployed must override it.
const DefaultAdminKey = "dev-admin-key-12345"

type Config struct {
	AppEnv       string
	IsProduction bool
	Port         string

	AdminKey       string
	AdminKeyBcrypt string

	StoreDriver string // memory | sqlite | postgres | mysql
	DatabaseURL string
	DBMaxOpen   int
	DBMaxIdle   int
	DBMaxLife   time.Duration

	LLMProvider   string // gemini | openai
	LLMMaxTokens  int
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string

	ScrapeTimeout time.Duration

	CacheDriver   string // memory | redis | none
	CacheTTL      time.Duration
	CacheMaxItems int
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitWindow   time.Duration
	RateLimitCapacity int

	SeedOnStart bool
	WebDir      string
	CORSOrigins []string
}

// UsingDefaultAdminKey reports whether the insecure development key is active.
func (c *Config) UsingDefaultAdminKey() bool {
	return c.AdminKeyBcrypt == "" && c.AdminKey == DefaultAdminKey
}

// loadDotEnv loads .env outside production. A missing file is fine.
func loadDotEnv(appEnv string) error {
	if appEnv == "production" {
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	return nil
}

// Load reads configuration from the process environment (and .env outside
// production). Call it once at startup.
func Load() (*Config, error) {
	if err := loadDotEnv(os.Getenv("APP_ENV")); err != nil {
		return nil, err
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("ADMIN_KEY", DefaultAdminKey)
	v.SetDefault("STORE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "app.db")
	v.SetDefault("DB_MAX_OPEN", 10)
	v.SetDefault("DB_MAX_IDLE", 5)
	v.SetDefault("DB_MAX_LIFE_SECONDS", 1800)
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("LLM_MAX_TOKENS", 4096)
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("SCRAPE_TIMEOUT_SECONDS", 15)
	v.SetDefault("CACHE_DRIVER", "none")
	v.SetDefault("CACHE_TTL_SECONDS", 600)
	v.SetDefault("CACHE_MAX_ITEMS", 500)
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 10)
	v.SetDefault("RATE_LIMIT_CAPACITY", 0)
	v.SetDefault("SEED_ON_START", true)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppEnv:         strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		Port:           v.GetString("PORT"),
		AdminKey:       v.GetString("ADMIN_KEY"),
		AdminKeyBcrypt: v.GetString("ADMIN_KEY_BCRYPT"),

		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBMaxOpen:   v.GetInt("DB_MAX_OPEN"),
		DBMaxIdle:   v.GetInt("DB_MAX_IDLE"),
		DBMaxLife:   seconds(v.GetInt("DB_MAX_LIFE_SECONDS")),

		LLMProvider:   strings.ToLower(v.GetString("LLM_PROVIDER")),
		LLMMaxTokens:  v.GetInt("LLM_MAX_TOKENS"),
		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		OpenAIBaseURL: strings.TrimRight(v.GetString("OPENAI_BASE_URL"), "/"),
		OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
		OpenAIModel:   v.GetString("OPENAI_MODEL"),

		ScrapeTimeout: seconds(v.GetInt("SCRAPE_TIMEOUT_SECONDS")),

		CacheDriver:   strings.ToLower(v.GetString("CACHE_DRIVER")),
		CacheTTL:      seconds(v.GetInt("CACHE_TTL_SECONDS")),
		CacheMaxItems: v.GetInt("CACHE_MAX_ITEMS"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		RateLimitWindow:   seconds(v.GetInt("RATE_LIMIT_WINDOW_SECONDS")),
		RateLimitCapacity: v.GetInt("RATE_LIMIT_CAPACITY"),

		SeedOnStart: v.GetBool("SEED_ON_START"),
		WebDir:      v.GetString("WEB_DIR"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
	}
	cfg.IsProduction = cfg.AppEnv == "production"

	if !slices.Contains([]string{"memory", "sqlite", "postgres", "mysql"}, cfg.StoreDriver) {
		return nil, fmt.Errorf("STORE_DRIVER must be one of memory, sqlite, postgres, mysql (got %q)", cfg.StoreDriver)
	}
	if !slices.Contains([]string{"gemini", "openai"}, cfg.LLMProvider) {
		return nil, fmt.Errorf("LLM_PROVIDER must be gemini or openai (got %q)", cfg.LLMProvider)
	}
	if !slices.Contains([]string{"memory", "redis", "none"}, cfg.CacheDriver) {
		return nil, fmt.Errorf("CACHE_DRIVER must be memory, redis or none (got %q)", cfg.CacheDriver)
	}
	if cfg.LLMMaxTokens <= 0 {
		cfg.LLMMaxTokens = 4096
	}
	if cfg.ScrapeTimeout <= 0 {
		cfg.ScrapeTimeout = 15 * time.Second
	}
	// the public dev key must never guard a production deployment
	if cfg.IsProduction && cfg.UsingDefaultAdminKey() {
		return nil, errors.New("ADMIN_KEY or ADMIN_KEY_BCRYPT must be set in production")
	}
	return cfg, nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
