package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, DefaultAdminKey, cfg.AdminKey)
	assert.True(t, cfg.UsingDefaultAdminKey())
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 4096, cfg.LLMMaxTokens)
	assert.Equal(t, 15*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, "none", cfg.CacheDriver)
	assert.Equal(t, 0, cfg.RateLimitCapacity)
	assert.True(t, cfg.SeedOnStart)
	assert.Len(t, cfg.CORSOrigins, 4)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_KEY", "s3cret")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1/")
	t.Setenv("SCRAPE_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.AdminKey)
	assert.False(t, cfg.UsingDefaultAdminKey())
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestRejectsUnknownDrivers(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	_, err := fromViper(newViper())
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestProductionRequiresAdminKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, err := fromViper(newViper())
	require.Error(t, err)

	t.Setenv("ADMIN_KEY", "prod-key")
	cfg, err := fromViper(newViper())
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
}
