package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "local", cfg.Mongo.Database)
	assert.Equal(t, "progresscard", cfg.Mongo.Collection)
	assert.Equal(t, uint64(50), cfg.Mongo.MaxPoolSize)
	assert.False(t, cfg.TableCache.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.TableCache.TTL)
	assert.NotEmpty(t, cfg.PDF.ScratchDir)
	assert.Equal(t, time.Hour, cfg.PDF.ScratchTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_COLLECTION", "cards")
	t.Setenv("ENABLE_TABLE_CACHE", "true")
	t.Setenv("TABLE_CACHE_TTL", "90s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "cards", cfg.Mongo.Collection)
	assert.True(t, cfg.TableCache.Enabled)
	assert.Equal(t, 90*time.Second, cfg.TableCache.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Minute))
}
