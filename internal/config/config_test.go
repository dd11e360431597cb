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

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "https://forkify-api.herokuapp.com/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.StoragePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:9999/api")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("PAGE_SIZE", "5")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/api", cfg.APIBaseURL)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidPageSize(t *testing.T) {
	tests := []string{"0", "-1", "many"}
	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			t.Setenv("PAGE_SIZE", v)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
