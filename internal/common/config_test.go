package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 2000, cfg.LLM.MaxOutputTokens)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 4, cfg.Jobs.Workers)
	assert.Equal(t, 100, cfg.Jobs.QueueCapacity)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("OPENAI_TIMEOUT", "90s")
	t.Setenv("OPENAI_MAX_ATTEMPTS", "5")
	t.Setenv("JOB_WORKERS", "8")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 5, cfg.LLM.MaxAttempts)
	assert.Equal(t, 8, cfg.Jobs.Workers)
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/test")
	t.Setenv("OPENAI_API_KEY", "key")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.LLM.APIKey = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
