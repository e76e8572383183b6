package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LLM_PROVIDER", "LLM_MAX_RETRIES", "RATE_LIMIT_ANALYZE_MAX", "DB_ENABLED", "ADMIN_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	assert.Equal(t, 1, cfg.LLM.MaxRetries)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxPDFSize)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxImageSize)
	assert.Equal(t, 100, cfg.RateLimit.GlobalMax)
	assert.Equal(t, time.Minute, cfg.RateLimit.GlobalWindow)
	assert.Equal(t, 5, cfg.RateLimit.AnalyzeMax)
	assert.Equal(t, time.Hour, cfg.RateLimit.AnalyzeWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("DB_ENABLED", "false")
	t.Setenv("ADMIN_KEY", "  secret  ")
	t.Setenv("RATE_LIMIT_ANALYZE_WINDOW", "30m")
	t.Setenv("RATE_LIMIT_ANALYZE_MAX", "not-a-number")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "secret", cfg.Security.AdminKey)
	assert.Equal(t, 30*time.Minute, cfg.RateLimit.AnalyzeWindow)
	assert.Equal(t, 5, cfg.RateLimit.AnalyzeMax)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n"}}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
