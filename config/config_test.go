package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_URI", "postgres://localhost/career")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URI", "")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173,")
	for _, k := range []string{"PORT", "MONGO_DB", "GENERATION_TIMEOUT", "MENTOR_LIST_LIMIT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "career_bot", cfg.MongoDB)
	assert.Equal(t, "redis://cache:6379/0", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 50, cfg.MentorListLimit)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AIEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POSTGRES_URI", "postgres://localhost/career")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GENERATION_TIMEOUT", "12")
	t.Setenv("RECOMMENDATION_CACHE_TTL", "5m")
	t.Setenv("MENTOR_LIST_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, 12*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, 5*time.Minute, cfg.RecommendationCacheTTL)
	assert.Equal(t, 50, cfg.MentorListLimit)
}

func TestLoadReportsAllMissing(t *testing.T) {
	t.Setenv("POSTGRES_URI", "")
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "POSTGRES_URI")
	assert.Contains(t, err.Error(), "MONGO_URI")
}
