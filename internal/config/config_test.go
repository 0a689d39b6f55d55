package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "employee_survey", cfg.MongoDB)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 60*time.Second, cfg.CacheTTL)
		assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://somewhere:27017")
		t.Setenv("MONGO_DB", "surveys_test")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("CACHE_TTL", "5m")
		t.Setenv("CACHE_WARM_CRON", "*/10 * * * *")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "mongodb://somewhere:27017", cfg.MongoURI)
		assert.Equal(t, "surveys_test", cfg.MongoDB)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
		assert.Equal(t, "*/10 * * * *", cfg.CacheWarmCron)
	})

	t.Run("rejects an unparseable cache TTL", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}
